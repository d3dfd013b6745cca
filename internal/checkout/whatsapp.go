// Package checkout builds the WhatsApp quote handoff: a pre-filled message
// and a wa.me deep link. Fire-and-forget — no delivery confirmation, no
// retry; opening the link is the client's job.
package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/greenandblue/gbstore/internal/cart"
)

const messageHeader = "🛒 *Hola, deseo cotizar los siguientes productos:*"

// FormatCOP renders whole Colombian pesos with dot thousands grouping, the
// es-CO convention ("250000" -> "250.000"). Grouping is explicit rather than
// CLDR-driven: Spanish CLDR minimum-grouping rules would render 1000 without
// a separator, which does not match the documented receipt format.
func FormatCOP(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// BuildMessage renders the quote text: header, one bullet per line, total.
func BuildMessage(lines []cart.Line, total int64) string {
	var b strings.Builder
	b.WriteString(messageHeader)
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString("• ")
		b.WriteString(line.Product.Name)
		b.WriteString(" - $")
		b.WriteString(FormatCOP(line.Product.Price))
		b.WriteString("\n")
	}
	b.WriteString("\n💰 *Total: $")
	b.WriteString(FormatCOP(total))
	b.WriteString(" COP*")
	return b.String()
}

// Handoff is the outbound deep link plus the plain message it encodes.
type Handoff struct {
	URL     string `json:"url"`
	Message string `json:"message"`
	Total   int64  `json:"total"`
}

// Build assembles the handoff for the given cart lines and destination phone.
func Build(phone string, lines []cart.Line, total int64) Handoff {
	msg := BuildMessage(lines, total)
	return Handoff{
		URL:     "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg),
		Message: msg,
		Total:   total,
	}
}

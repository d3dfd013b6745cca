package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/greenandblue/gbstore/internal/cart"
	"github.com/greenandblue/gbstore/internal/domain"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1.000"},
		{250000, "250.000"},
		{680000, "680.000"},
		{1234567, "1.234.567"},
		{-1000, "-1.000"},
	}
	for _, tc := range cases {
		if got := FormatCOP(tc.in); got != tc.want {
			t.Errorf("FormatCOP(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func quoteLines() []cart.Line {
	return []cart.Line{
		{CartID: 1, Product: domain.Product{Name: "A", Price: 1000}},
		{CartID: 2, Product: domain.Product{Name: "B", Price: 2000}},
	}
}

func TestBuildMessageFormat(t *testing.T) {
	msg := BuildMessage(quoteLines(), 3000)

	if !strings.HasPrefix(msg, messageHeader) {
		t.Fatalf("message missing header: %q", msg)
	}
	for _, want := range []string{"• A - $1.000", "• B - $2.000", "*Total: $3.000 COP*"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	// bullet order follows cart line order
	if strings.Index(msg, "• A") > strings.Index(msg, "• B") {
		t.Fatal("bullets out of cart order")
	}
}

func TestBuildHandoffURL(t *testing.T) {
	h := Build("573134809376", quoteLines(), 3000)

	if !strings.HasPrefix(h.URL, "https://wa.me/573134809376?text=") {
		t.Fatalf("unexpected deep link: %q", h.URL)
	}
	if h.Total != 3000 {
		t.Fatalf("total = %d, want 3000", h.Total)
	}

	u, err := url.Parse(h.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if decoded := u.Query().Get("text"); decoded != h.Message {
		t.Fatalf("text param does not round-trip:\n%q\n%q", decoded, h.Message)
	}
}

func TestBuildEmptyCart(t *testing.T) {
	h := Build("573134809376", nil, 0)
	if !strings.Contains(h.Message, "Total: $0 COP") {
		t.Fatalf("empty handoff message: %q", h.Message)
	}
}

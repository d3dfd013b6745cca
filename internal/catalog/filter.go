package catalog

import (
	"strings"
	"unicode"

	"github.com/greenandblue/gbstore/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain strips diacritic marks so "CAMARA" matches "Cámara".
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldChain, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Visible returns the subset of products matching the category filter and the
// free-text query. The match is a case- and accent-insensitive substring test
// on the product name only; domain.CategoryAll disables the category
// restriction. Result order equals input order; no pagination, no ranking.
func Visible(products []domain.Product, categoryFilter, query string) []domain.Product {
	q := fold(strings.TrimSpace(query))
	visible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if categoryFilter != domain.CategoryAll && p.Category != categoryFilter {
			continue
		}
		if q != "" && !strings.Contains(fold(p.Name), q) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

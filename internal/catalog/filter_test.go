package catalog

import (
	"testing"

	"github.com/greenandblue/gbstore/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Cámara IP 4MP", Category: domain.CategoryCCTV, Price: 250000},
		{ID: 2, Name: "Grabador NVR 8ch", Category: domain.CategoryCCTV, Price: 400000},
		{ID: 3, Name: "Lector Biométrico", Category: domain.CategoryAccess, Price: 320000},
		{ID: 4, Name: "Panel de Control", Category: domain.CategorySecurity, Price: 450000},
		{ID: 5, Name: "Cámara Domo PTZ", Category: domain.CategoryCCTV, Price: 550000},
	}
}

func TestVisibleAllCategoriesEmptyQuery(t *testing.T) {
	products := sampleProducts()
	got := Visible(products, domain.CategoryAll, "")
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
	for i := range products {
		if got[i].ID != products[i].ID {
			t.Fatalf("order changed at index %d: got id %d, want %d", i, got[i].ID, products[i].ID)
		}
	}
}

func TestVisibleCategoryFilter(t *testing.T) {
	got := Visible(sampleProducts(), domain.CategoryCCTV, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 CCTV products, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != domain.CategoryCCTV {
			t.Errorf("product %q has category %q", p.Name, p.Category)
		}
	}
}

func TestVisibleQueryCaseInsensitive(t *testing.T) {
	got := Visible(sampleProducts(), domain.CategoryAll, "cámara")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "cámara", len(got))
	}

	upper := Visible(sampleProducts(), domain.CategoryAll, "CÁMARA")
	if len(upper) != 2 {
		t.Fatalf("expected case-insensitive match, got %d", len(upper))
	}
}

func TestVisibleQueryAccentFolded(t *testing.T) {
	// documented normalization strategy: lowercase + diacritic folding,
	// so a keyboard without accents still finds the product
	got := Visible(sampleProducts(), domain.CategoryAll, "CAMARA")
	if len(got) != 2 {
		t.Fatalf("expected accent-folded match for CAMARA, got %d", len(got))
	}
	if got[0].Name != "Cámara IP 4MP" || got[1].Name != "Cámara Domo PTZ" {
		t.Fatalf("unexpected match order: %q, %q", got[0].Name, got[1].Name)
	}

	bio := Visible(sampleProducts(), domain.CategoryAll, "biometrico")
	if len(bio) != 1 || bio[0].ID != 3 {
		t.Fatalf("expected Lector Biométrico, got %v", bio)
	}
}

func TestVisibleCategoryAndQueryCombined(t *testing.T) {
	got := Visible(sampleProducts(), domain.CategoryCCTV, "domo")
	if len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("expected only Cámara Domo PTZ, got %v", got)
	}
}

func TestVisibleNoMatches(t *testing.T) {
	got := Visible(sampleProducts(), domain.CategoryAll, "alarma perimetral")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	if got == nil {
		t.Fatal("expected non-nil empty slice")
	}
}

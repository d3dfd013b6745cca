package domain

import "time"

// Product categories sold by the storefront. The set is fixed; CategoryAll is
// the filter sentinel meaning "no category restriction" and is never stored.
const (
	CategoryAll      = "Todos"
	CategoryCCTV     = "CCTV"
	CategoryAccess   = "Control de Acceso"
	CategorySecurity = "Seguridad Electrónica"
)

// Categories returns the storable category set in display order.
func Categories() []string {
	return []string{CategoryCCTV, CategoryAccess, CategorySecurity}
}

// ValidCategory reports whether cat is one of the storable categories.
func ValidCategory(cat string) bool {
	switch cat {
	case CategoryCCTV, CategoryAccess, CategorySecurity:
		return true
	}
	return false
}

// Product is a catalog item. Price is in whole Colombian pesos. Stock nil
// means unknown (still purchasable); an explicit zero means sold out.
type Product struct {
	ID          int64     `gorm:"primaryKey" json:"id" csv:"id"`
	Name        string    `gorm:"index" json:"name" csv:"name"`
	Category    string    `gorm:"size:64;index" json:"category" csv:"category"`
	Price       int64     `json:"price" csv:"price"`
	Image       string    `gorm:"size:1024" json:"image" csv:"image"`
	Stock       *int      `json:"stock,omitempty" csv:"stock"`
	Description string    `gorm:"size:4096" json:"description,omitempty" csv:"description"`
	CreatedAt   time.Time `json:"created_at" csv:"-"`
	UpdatedAt   time.Time `json:"updated_at" csv:"-"`
}

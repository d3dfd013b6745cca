package catalog

import (
	"context"
	"time"

	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultProducts are the demonstration records seeded into an empty catalog,
// spanning all three categories.
var defaultProducts = []ProductInput{
	{Name: "Cámara IP 4MP", Category: domain.CategoryCCTV, Price: 250000, Image: "https://images.unsplash.com/photo-1557597774-9d273605dfa9?w=400"},
	{Name: "Grabador NVR 8ch", Category: domain.CategoryCCTV, Price: 400000, Image: "https://images.unsplash.com/photo-1558002038-1055907df827?w=400"},
	{Name: "Lector Biométrico", Category: domain.CategoryAccess, Price: 320000, Image: "https://images.unsplash.com/photo-1614064548392-d21f89090b7b?w=400"},
	{Name: "Panel de Control", Category: domain.CategorySecurity, Price: 450000, Image: "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?w=400"},
	{Name: "Cámara Domo PTZ", Category: domain.CategoryCCTV, Price: 550000, Image: "https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?w=400"},
	{Name: "Control de Acceso Facial", Category: domain.CategoryAccess, Price: 680000, Image: "https://images.unsplash.com/photo-1560732488-6b0df240254a?w=400"},
}

// SeedDefaults inserts the default demonstration products when the catalog is
// empty, and reports how many records were created. The count-then-create
// runs in one transaction; concurrent processes can still double-seed (known
// race, see DESIGN.md). Seeding runs at startup before subscribers attach,
// so the first snapshot any subscriber sees already contains the seeded rows.
func (s *Store) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.Product{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		now := time.Now()
		for _, in := range defaultProducts {
			p := domain.Product{
				ID:        common.UUIDint64(),
				Name:      in.Name,
				Category:  in.Category,
				Price:     in.Price,
				Image:     in.Image,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			created++
			// keep insertion order stable under created_at sorting
			now = now.Add(time.Millisecond)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if created > 0 {
		zap.L().Info("catalog: seeded default products", zap.Int("count", created))
		s.notify(ctx)
	}
	return created, nil
}

package app

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/greenandblue/gbstore/internal/domain"
)

type settingSchema struct {
	Category    string
	Name        string
	Default     string
	Description string
}

// checkSettings seeds missing settings rows with their defaults. Values the
// operator has already changed are left alone.
func (a *Application) checkSettings() {
	schemas := []settingSchema{
		{"storefront", "company_name", a.appConfig.Storefront.CompanyName, "Display name used in storefront headers"},
		{"storefront", "whatsapp_phone", a.appConfig.Storefront.WhatsappPhone, "Destination phone for the checkout handoff"},
		{"storefront", "contact_email", "greenandblue@gmail.com", "Public contact email"},
		{"cart", "session_ttl_min", strconv.Itoa(a.appConfig.Storefront.CartTTLMin), "Idle minutes before a session cart is evicted"},
		{"audit", "retention_days", "365", "Days to keep admin action logs"},
	}

	for sortid, schema := range schemas {
		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", schema.Category, schema.Name).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				Sort:   sortid,
				Type:   schema.Category,
				Name:   schema.Name,
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized setting",
				zap.String("key", schema.Category+"."+schema.Name),
				zap.String("default", schema.Default))
		}
	}
}

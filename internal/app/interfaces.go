package app

import (
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/greenandblue/gbstore/config"
	"github.com/greenandblue/gbstore/internal/cart"
	"github.com/greenandblue/gbstore/internal/catalog"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SettingsProvider provides system settings access
type SettingsProvider interface {
	GetSettingsStringValue(category, key string) string
	GetSettingsInt64Value(category, key string) int64
	GetSettingsBoolValue(category, key string) bool
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// CatalogProvider provides the catalog store and its cache
type CatalogProvider interface {
	CatalogStore() *catalog.Store
	CatalogCache() *catalog.Cache
}

// CartProvider provides the session cart manager
type CartProvider interface {
	Carts() *cart.Manager
}

// AuditProvider records admin actions
type AuditProvider interface {
	AuditLog(oprName, action, detail string)
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	SettingsProvider
	SchedulerProvider
	CatalogProvider
	CartProvider
	AuditProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}

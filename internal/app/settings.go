package app

import (
	"sync"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/greenandblue/gbstore/internal/domain"
)

// ConfigManager reads the settings table with a small in-memory cache.
type ConfigManager struct {
	app   *Application
	mu    sync.RWMutex
	cache map[string]string
}

func NewConfigManager(a *Application) *ConfigManager {
	return &ConfigManager{app: a, cache: make(map[string]string)}
}

func (m *ConfigManager) lookup(category, name string) (string, bool) {
	key := category + "." + name
	m.mu.RLock()
	if v, ok := m.cache[key]; ok {
		m.mu.RUnlock()
		return v, true
	}
	m.mu.RUnlock()

	var cfg domain.SysConfig
	err := m.app.gormDB.Where("type = ? and name = ?", category, name).First(&cfg).Error
	if err != nil {
		return "", false
	}
	m.mu.Lock()
	m.cache[key] = cfg.Value
	m.mu.Unlock()
	return cfg.Value, true
}

// Invalidate drops the cached value for a settings key.
func (m *ConfigManager) Invalidate(category, name string) {
	m.mu.Lock()
	delete(m.cache, category+"."+name)
	m.mu.Unlock()
}

func (m *ConfigManager) GetString(category, name string) string {
	v, _ := m.lookup(category, name)
	return v
}

func (m *ConfigManager) GetInt64(category, name string) int64 {
	v, ok := m.lookup(category, name)
	if !ok {
		return 0
	}
	return cast.ToInt64(v)
}

func (m *ConfigManager) GetInt(category, name string) int {
	return int(m.GetInt64(category, name))
}

func (m *ConfigManager) GetBool(category, name string) bool {
	v, ok := m.lookup(category, name)
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// SetValue updates or creates a settings row and refreshes the cache.
func (m *ConfigManager) SetValue(category, name, value string) error {
	var cfg domain.SysConfig
	err := m.app.gormDB.Where("type = ? and name = ?", category, name).First(&cfg).Error
	if err != nil {
		cfg = domain.SysConfig{Type: category, Name: name, Value: value}
		if err := m.app.gormDB.Create(&cfg).Error; err != nil {
			return err
		}
	} else {
		if err := m.app.gormDB.Model(&domain.SysConfig{}).
			Where("id = ?", cfg.ID).Update("value", value).Error; err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.cache[category+"."+name] = value
	m.mu.Unlock()
	zap.L().Info("setting updated", zap.String("key", category+"."+name))
	return nil
}

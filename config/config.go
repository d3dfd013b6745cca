package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/greenandblue/gbstore/pkg/common"
)

// SysConfig holds base system options.
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig holds HTTP server options.
type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

// DBConfig holds database connection options.
type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// LogConfig holds logger options.
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// StorefrontConfig holds storefront business options.
type StorefrontConfig struct {
	CompanyName   string `yaml:"company_name" json:"company_name"`
	AdminPassword string `yaml:"admin_password" json:"admin_password"`
	WhatsappPhone string `yaml:"whatsapp_phone" json:"whatsapp_phone"`
	CartTTLMin    int    `yaml:"cart_ttl_min" json:"cart_ttl_min"`
}

// AppConfig is the full application configuration.
type AppConfig struct {
	System     SysConfig        `yaml:"system" json:"system"`
	Web        WebConfig        `yaml:"web" json:"web"`
	Database   DBConfig         `yaml:"database" json:"database"`
	Logger     LogConfig        `yaml:"logger" json:"logger"`
	Storefront StorefrontConfig `yaml:"storefront" json:"storefront"`
}

// DefaultAppConfig returns the built-in defaults used when no config file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "gbstore",
			Location: "America/Bogota",
			Workdir:  "/var/gbstore",
			Debug:    false,
		},
		Web: WebConfig{
			Host:   "0.0.0.0",
			Port:   1816,
			Secret: "9b6de5cc-gbstore-b9f8-admin-secret",
		},
		Database: DBConfig{
			Type:     "postgres",
			Host:     "127.0.0.1",
			Port:     5432,
			Name:     "gbstore",
			User:     "postgres",
			Passwd:   "",
			MaxConn:  100,
			IdleConn: 10,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: true,
			Filename:   "/var/gbstore/gbstore.log",
		},
		Storefront: StorefrontConfig{
			CompanyName:   "Green And Blue Ind",
			AdminPassword: "GreenBlue2024",
			WhatsappPhone: "573134809376",
			CartTTLMin:    120,
		},
	}
}

// LoadConfig reads configuration from path, falling back to defaults when the
// file does not exist. Environment variables override file values.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path != "" && common.FileExists(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	setEnvString(&cfg.System.Workdir, "GBSTORE_WORKDIR")
	setEnvString(&cfg.Web.Host, "GBSTORE_WEB_HOST")
	setEnvString(&cfg.Web.Secret, "GBSTORE_WEB_SECRET")
	setEnvString(&cfg.Database.Type, "GBSTORE_DB_TYPE")
	setEnvString(&cfg.Database.Host, "GBSTORE_DB_HOST")
	setEnvString(&cfg.Database.Name, "GBSTORE_DB_NAME")
	setEnvString(&cfg.Database.User, "GBSTORE_DB_USER")
	setEnvString(&cfg.Database.Passwd, "GBSTORE_DB_PASSWD")
	setEnvString(&cfg.Storefront.AdminPassword, "GBSTORE_ADMIN_PASSWORD")
	setEnvString(&cfg.Storefront.WhatsappPhone, "GBSTORE_WHATSAPP_PHONE")
}

func setEnvString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// InitDirs ensures the workdir layout exists.
func (c *AppConfig) InitDirs() error {
	for _, dir := range []string{
		c.System.Workdir,
		filepath.Join(c.System.Workdir, "metrics"),
		filepath.Join(c.System.Workdir, "data"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

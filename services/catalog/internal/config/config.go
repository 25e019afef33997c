package config

import (
	"github.com/cuihairu/ludotheque/internal/telemetry"
	"github.com/spf13/viper"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

// Config is the catalog service configuration. OTLP export lives under Otel
// because the embedded RestConf already owns the Telemetry key.
type Config struct {
	rest.RestConf
	Database DatabaseConfig   `json:",optional"`
	Catalog  CatalogConfig    `json:",optional"`
	Views    ViewsConfig      `json:",optional"`
	AppLog   AppLogConfig     `json:",optional"`
	Otel     telemetry.Config `json:",optional"`
}

type DatabaseConfig struct {
	Driver     string `json:",default=sqlite,options=sqlite|sqlite3|postgres|postgresql|pgx|mysql|sqlserver|mssql|auto"`
	DataSource string `json:",optional"`
}

type CatalogConfig struct {
	// YAML file `{genres: [..]}`; empty uses the built-in genre list.
	SeedFile string `json:",optional"`
}

type ViewsConfig struct {
	// Dir overrides the embedded templates (layout.html + pages/).
	Dir    string `json:",optional"`
	Reload bool   `json:",optional"`
}

type AppLogConfig struct {
	Level      string `json:",default=info"`
	Format     string `json:",default=text,options=text|json"`
	File       string `json:",optional"`
	MaxSize    int    `json:",default=100"`
	MaxBackups int    `json:",default=7"`
	MaxAge     int    `json:",default=7"`
	Compress   bool   `json:",optional"`
}

// Load reads path with env expansion, then applies CLI/env overrides bound in v.
func Load(path string, v *viper.Viper) (Config, error) {
	var c Config
	if err := conf.Load(path, &c, conf.UseEnv()); err != nil {
		return c, err
	}
	ApplyOverrides(&c, v)
	applyDefaults(&c)
	return c, nil
}

// applyDefaults covers sections left out of the file entirely.
func applyDefaults(c *Config) {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.AppLog.Level == "" {
		c.AppLog.Level = "info"
	}
	if c.AppLog.Format == "" {
		c.AppLog.Format = "text"
	}
	if c.AppLog.MaxSize == 0 {
		c.AppLog.MaxSize = 100
	}
	if c.Otel.ServiceName == "" {
		c.Otel.ServiceName = c.Name
	}
}

// ApplyOverrides copies the values explicitly set through flags or LUDOTHEQUE_* env.
func ApplyOverrides(c *Config, v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet("host") {
		c.Host = v.GetString("host")
	}
	if v.IsSet("port") {
		c.Port = v.GetInt("port")
	}
	if v.IsSet("db-driver") {
		c.Database.Driver = v.GetString("db-driver")
	}
	if v.IsSet("db-dsn") {
		c.Database.DataSource = v.GetString("db-dsn")
	}
	if v.IsSet("log-level") {
		c.AppLog.Level = v.GetString("log-level")
	}
	if v.IsSet("seed-file") {
		c.Catalog.SeedFile = v.GetString("seed-file")
	}
}

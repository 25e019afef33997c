package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
)

const minimal = `
Name: catalog
Host: 127.0.0.1
Port: 8888
Database:
  DataSource: ":memory:"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, minimal), nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.Equal(t, ":memory:", c.Database.DataSource)
	assert.Equal(t, "info", c.AppLog.Level)
	assert.Equal(t, "text", c.AppLog.Format)
	assert.NotEmpty(t, c.Otel.ServiceName)
	assert.Empty(t, c.Catalog.SeedFile)
	assert.False(t, c.Views.Reload)
}

func TestSectionDefaults(t *testing.T) {
	var c Config
	require.NoError(t, conf.LoadFromYamlBytes([]byte(minimal+"AppLog: {}\nOtel: {}\n"), &c))
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.Equal(t, 7, c.AppLog.MaxBackups)
	assert.Equal(t, "ludotheque", c.Otel.ServiceName)
	assert.True(t, c.Otel.Insecure)
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeConfig(t, minimal)

	v := viper.New()
	v.Set("port", 9090)
	v.Set("db-driver", "postgres")
	v.Set("db-dsn", "postgres://u:p@localhost/ludo")
	v.Set("log-level", "debug")

	c, err := Load(path, v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "postgres", c.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost/ludo", c.Database.DataSource)
	assert.Equal(t, "debug", c.AppLog.Level)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	var c Config
	err := conf.LoadFromYamlBytes([]byte(minimal+"  Driver: oracle\n"), &c)
	assert.Error(t, err)
}

func TestLoadShippedConfig(t *testing.T) {
	t.Setenv("LUDOTHEQUE_DB_DSN", "file:shipped.db")

	c, err := Load(filepath.Join("..", "..", "etc", "catalog.yaml"), viper.New())
	require.NoError(t, err)
	assert.Equal(t, "ludotheque", c.Name)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.Equal(t, "file:shipped.db", c.Database.DataSource)
	assert.Empty(t, c.Otel.Endpoint)
	assert.Equal(t, "ludotheque", c.Otel.ServiceName)
	assert.Equal(t, "text", c.AppLog.Format)
}

package svc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cuihairu/ludotheque/services/catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryConfig uses a named shared-cache database so every pooled connection sees the same tables.
func memoryConfig(t *testing.T) config.Config {
	var c config.Config
	c.Name = "catalog-test"
	c.Database.Driver = "sqlite"
	c.Database.DataSource = "file:" + t.Name() + "?mode=memory&cache=shared"
	return c
}

func TestNewServiceContextSeedsFromFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "genres.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("genres:\n  - Metroidvania\n  - Visual novel\n"), 0o644))

	c := memoryConfig(t)
	c.Catalog.SeedFile = seedFile
	sc, err := NewServiceContext(c)
	require.NoError(t, err)
	defer sc.Close()

	require.NoError(t, sc.Seed(context.Background()))
	genres, err := sc.Genres.List(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Metroidvania", genres[0].Name)
}

func TestNewServiceContextRejectsBadSeedFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "genres.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("genres: []\n"), 0o644))

	c := memoryConfig(t)
	c.Catalog.SeedFile = seedFile
	_, err := NewServiceContext(c)
	assert.Error(t, err)
}

func TestNewServiceContextRejectsUnknownDriver(t *testing.T) {
	c := memoryConfig(t)
	c.Database.Driver = "oracle"
	_, err := NewServiceContext(c)
	assert.Error(t, err)
}

func TestWatchViewsNoopWithoutDir(t *testing.T) {
	c := memoryConfig(t)
	c.Views.Reload = true
	sc, err := NewServiceContext(c)
	require.NoError(t, err)
	defer sc.Close()
	require.NoError(t, sc.WatchViews(context.Background()))
	assert.Nil(t, sc.watcher)
}

func TestBootstrapShippedConfig(t *testing.T) {
	t.Setenv("LUDOTHEQUE_DB_DSN", "file:"+t.Name()+"?mode=memory&cache=shared")
	c, err := config.Load(filepath.Join("..", "..", "etc", "catalog.yaml"), nil)
	require.NoError(t, err)

	sc, err := Bootstrap(context.Background(), c)
	require.NoError(t, err)
	defer sc.Close()

	genres, err := sc.Genres.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, genres, len(sc.Seeder.Names()))
}

func TestBootstrapFailsOnBadSeedFile(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "genres.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("genres:\n  - \"  \"\n"), 0o644))

	c := memoryConfig(t)
	c.Catalog.SeedFile = seedFile
	sc, err := Bootstrap(context.Background(), c)
	assert.Error(t, err)
	assert.Nil(t, sc)
}

func TestPrepareFailsWhenSeedingFails(t *testing.T) {
	sc, err := NewServiceContext(memoryConfig(t))
	require.NoError(t, err)
	defer sc.Close()

	require.NoError(t, sc.DB.Exec("DROP TABLE games").Error)
	require.NoError(t, sc.DB.Exec("DROP TABLE genres").Error)

	err = sc.Prepare(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed genres")
}

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	repocatalog "github.com/cuihairu/ludotheque/internal/repo/gorm/catalog"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repocatalog.AutoMigrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	genres := repocatalog.NewGenreRepo(newTestDB(t))
	svc := NewService(genres, nil)

	n, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultGenres), n)

	n, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := genres.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(DefaultGenres))
	seen := map[string]int{}
	for _, g := range list {
		seen[g.Name]++
	}
	for _, name := range DefaultGenres {
		assert.Equal(t, 1, seen[name], name)
	}
}

func TestSeedKeepsExistingRows(t *testing.T) {
	ctx := context.Background()
	genres := repocatalog.NewGenreRepo(newTestDB(t))
	_, err := genres.EnsureNamed(ctx, "RPG")
	require.NoError(t, err)

	n, err := NewService(genres, []string{"RPG", "Puzzle"}).Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDefaultGenresAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range DefaultGenres {
		assert.False(t, seen[g], g)
		seen[g] = true
	}
	assert.Len(t, DefaultGenres, 21)
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	names, err := LoadSeedFile(write("ok.yaml", "genres:\n  - RPG\n  - Visual novel\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"RPG", "Visual novel"}, names)

	for name, body := range map[string]string{
		"empty.yaml": "",
		"none.yaml":  "genres: []\n",
		"dup.yaml":   "genres: [RPG, RPG]\n",
		"blank.yaml": "genres: ['  ']\n",
		"typed.yaml": "genres: [1]\n",
		"extra.yaml": "genres: [RPG]\nother: 1\n",
	} {
		_, err := LoadSeedFile(write(name, body))
		assert.Error(t, err, name)
	}

	_, err = LoadSeedFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

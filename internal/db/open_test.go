package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?cache=shared&_pragma=foreign_keys(1)", sqliteDSN("file:x.db?cache=shared"))
	assert.Equal(t, "file:/tmp/a.db?_pragma=foreign_keys(1)", sqliteDSN("sqlite:///tmp/a.db"))
	assert.Equal(t, "file:data/a.db?_pragma=foreign_keys(1)", sqliteDSN("sqlite://data/a.db"))
	assert.Equal(t, "file:y.db?_pragma=foreign_keys(0)", sqliteDSN("file:y.db?_pragma=foreign_keys(0)"))
}

func TestDialectorGuessesFromDSN(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db": "postgres",
		"mysql://u:p@tcp(localhost:3306)/db": "mysql",
		"sqlserver://u:p@localhost:1433":     "sqlserver",
		":memory:":                           "sqlite",
	}
	for dsn, want := range cases {
		d, err := Dialector("auto", dsn)
		require.NoError(t, err, dsn)
		assert.Equal(t, want, d.Name(), dsn)
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector("oracle", "")
	require.Error(t, err)
}

func TestOpenInMemorySQLite(t *testing.T) {
	gdb, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	var on int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&on).Error)
	assert.Equal(t, 1, on)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

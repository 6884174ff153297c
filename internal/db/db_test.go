package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "catalog.db")

	database, err := Open(path, "s3cret")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.RunMigrations())
	version, err := database.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	var count int
	require.NoError(t, database.QueryRow("SELECT count(*) FROM items").Scan(&count))
	assert.Equal(t, 4, count)

	// Running again is a no-op
	require.NoError(t, database.RunMigrations())
	require.NoError(t, database.QueryRow("SELECT count(*) FROM items").Scan(&count))
	assert.Equal(t, 4, count)
}

func TestOpenWithWrongKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	database, err := Open(path, "right")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations())
	require.NoError(t, database.Close())

	_, err = Open(path, "wrong")
	assert.Error(t, err)
}

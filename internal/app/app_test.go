package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andy/toolrent/internal/config"
	"github.com/andy/toolrent/internal/crypto"
	"github.com/andy/toolrent/internal/domain"
)

func TestNewWithBuiltinCatalog(t *testing.T) {
	cfg := config.DefaultConfig()

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.DB, "builtin catalog never opens the database")
	assert.Equal(t, 4, a.Catalog.Len())

	c, err := a.RentalService.RentItem("JAKR", 9, 0, "07/02/15")
	require.NoError(t, err)
	assert.Equal(t, 5, c.BillableDays)
}

func TestNewWithFileCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
items:
  - code: SAND
    type: Sander
    brand: Makita
    daily_fee: 2.50
    weekday_charge: true
    weekend_charge: true
`), 0644))

	cfg := config.DefaultConfig()
	cfg.Catalog.Source = config.SourceFile
	cfg.Catalog.File = path

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	c, err := a.RentalService.RentItem("SAND", 4, 0, "07/02/20")
	require.NoError(t, err)
	// Friday the 3rd is the observed Independence Day
	assert.Equal(t, 3, c.BillableDays)
	assert.Equal(t, "$7.50", domain.FormatMoney(c.TotalCharge))
}

func TestNewWithMissingCatalogFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Catalog.Source = config.SourceFile
	cfg.Catalog.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewWithConfig(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewWithDatabaseCatalog(t *testing.T) {
	t.Setenv(crypto.EnvKey, "test-key")

	cfg := config.DefaultConfig()
	cfg.Catalog.Source = config.SourceDatabase
	cfg.Database.Path = filepath.Join(t.TempDir(), "data", "catalog.db")

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.DB)
	assert.Equal(t, 4, a.Catalog.Len())

	again, err := a.OpenDatabase(context.Background())
	require.NoError(t, err)
	assert.Same(t, a.ItemRepo, again)
}

func TestNewRespectsHolidayConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Holidays.Enabled = nil

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Empty(t, a.RentalService.Holidays(2020))

	// Without holidays the ladder is charged on the 3rd too
	c, err := a.RentalService.RentItem("LADW", 3, 10, "07/02/20")
	require.NoError(t, err)
	assert.Equal(t, 3, c.BillableDays)
}

func TestNewLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0644))

	a, err := New(context.Background(), path)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "error", a.Config.Log.Level)
	assert.Equal(t, path, a.ConfigPath)
}

// noKeyring has no stored key and nowhere to store one
type noKeyring struct {
	setCalls int
}

func (k *noKeyring) GetKey() (string, error) { return "", errors.New("no key") }
func (k *noKeyring) SetKey(string) error     { k.setCalls++; return crypto.ErrKeyringUnavailable }
func (k *noKeyring) DeleteKey() error        { return crypto.ErrKeyringUnavailable }
func (k *noKeyring) IsAvailable() bool       { return false }

func TestOpenDatabaseWithoutKeyringFailsFast(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Catalog.Source = config.SourceDatabase
	cfg.Database.Path = filepath.Join(t.TempDir(), "catalog.db")

	kr := &noKeyring{}
	a := &App{Config: cfg, Log: zap.NewNop(), keyring: kr}

	_, err := a.OpenDatabase(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrKeyringUnavailable)
	assert.ErrorContains(t, err, crypto.EnvKey)
	assert.Zero(t, kr.setCalls, "no password is collected when it cannot be kept")
	assert.Nil(t, a.DB)

	_, err = os.Stat(cfg.Database.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "database not created")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/toolrent/internal/holiday"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func civilDate(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, []string{"independence_day", "labor_day"}, cfg.Holidays.Enabled)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
catalog:
  source: file
  file: /tmp/items.yaml
holidays:
  enabled: [labor_day]
  custom:
    - name: Christmas
      month: 12
      day: 25
      observe_weekend: true
    - name: Thanksgiving
      month: 11
      weekday: thursday
      nth: 4
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, cfg.Catalog.Source)
	assert.Equal(t, "/tmp/items.yaml", cfg.Catalog.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")

	rules, err := cfg.HolidayRules()
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "Labor Day", rules[0].Name())

	cal := holiday.NewCalendar(rules...)
	// December 25th 2021 was a Saturday
	assert.True(t, cal.IsHoliday(civilDate(2021, time.December, 24)))
	assert.True(t, cal.IsHoliday(civilDate(2021, time.November, 25)))
	assert.False(t, cal.IsHoliday(civilDate(2021, time.July, 5)), "independence day disabled")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown source", func(c *Config) { c.Catalog.Source = "s3" }},
		{"file source without file", func(c *Config) { c.Catalog.Source = SourceFile }},
		{"database without path", func(c *Config) { c.Catalog.Source = SourceDatabase; c.Database.Path = "" }},
		{"unknown holiday", func(c *Config) { c.Holidays.Enabled = []string{"festivus"} }},
		{"custom without name", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Month: 1, Day: 1}} }},
		{"custom bad month", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Name: "X", Month: 13, Day: 1}} }},
		{"custom day zero", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Name: "X", Month: 1, Day: 0}} }},
		{"custom february 30", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Name: "X", Month: 2, Day: 30}} }},
		{"custom april 31", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Name: "X", Month: 4, Day: 31}} }},
		{"custom bad weekday", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Name: "X", Month: 1, Weekday: "funday", Nth: 1}} }},
		{"custom bad nth", func(c *Config) { c.Holidays.Custom = []CustomHoliday{{Name: "X", Month: 1, Weekday: "monday", Nth: 5}} }},
	}

	require.NoError(t, DefaultConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCustomHolidayOnLeapDay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Holidays.Enabled = nil
	cfg.Holidays.Custom = []CustomHoliday{{Name: "Leap Fest", Month: 2, Day: 29}}
	require.NoError(t, cfg.Validate())

	rules, err := cfg.HolidayRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, civil.Date{Year: 2021, Month: time.February, Day: 28}, rules[0].Observed(2021))
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, rules[0].Observed(2024))
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "catalog:\n  source: ftp\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

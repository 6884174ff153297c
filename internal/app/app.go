package app

import (
	"context"
	"fmt"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/andy/toolrent/internal/catalog"
	"github.com/andy/toolrent/internal/config"
	"github.com/andy/toolrent/internal/crypto"
	"github.com/andy/toolrent/internal/db"
	"github.com/andy/toolrent/internal/holiday"
	"github.com/andy/toolrent/internal/logger"
	"github.com/andy/toolrent/internal/repository"
	"github.com/andy/toolrent/internal/service"
)

// App is the dependency injection container for all application components
type App struct {
	Config     *config.Config
	ConfigPath string
	Log        *zap.Logger

	// Only set once the catalog database has been opened
	DB       *db.DB
	ItemRepo repository.ItemRepository

	Catalog  *catalog.Catalog
	Calendar *holiday.Calendar

	RentalService service.RentalService

	keyring crypto.Keyring
}

// New creates a new App from the config at path (the default path when empty).
// It handles:
// 1. Loading config
// 2. Building the logger
// 3. Building the holiday calendar
// 4. Loading the catalog from its configured source
// 5. Creating the rental service
func New(ctx context.Context, path string) (*App, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.ConfigPath = path
	return a, nil
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rules, err := cfg.HolidayRules()
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday calendar: %w", err)
	}

	a := &App{
		Config:     cfg,
		ConfigPath: config.DefaultConfigPath(),
		Log:        log,
		Calendar:   holiday.NewCalendar(rules...),
		keyring:    crypto.NewKeyring(),
	}

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Catalog = cat

	a.RentalService = service.NewRentalService(a.Catalog, a.Calendar, log)

	log.Debug("app ready",
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Int("items", cat.Len()),
		zap.Int("holiday_rules", len(rules)),
	)

	return a, nil
}

func (a *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	switch a.Config.Catalog.Source {
	case config.SourceFile:
		cat, err := catalog.LoadFile(a.Config.Catalog.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog file: %w", err)
		}
		return cat, nil

	case config.SourceDatabase:
		repo, err := a.OpenDatabase(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.Load(ctx, repo)

	default:
		return catalog.Reference(), nil
	}
}

// OpenDatabase opens the encrypted catalog database, creating and migrating
// it on first use. Calling it again returns the already open repository.
func (a *App) OpenDatabase(ctx context.Context) (repository.ItemRepository, error) {
	if a.ItemRepo != nil {
		return a.ItemRepo, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	password, err := a.keyring.GetKey()
	if err != nil {
		// Nowhere to keep a new password, so prompting would only lose it
		if !a.keyring.IsAvailable() {
			return nil, fmt.Errorf("%w: set %s (or add it to .env) and run again",
				crypto.ErrKeyringUnavailable, crypto.EnvKey)
		}

		// No key exists, prompt user to set one
		fmt.Println("Setting up catalog database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		if err := a.keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	database, err := db.Open(a.Config.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a.Log.Debug("catalog database open", zap.String("path", a.Config.Database.Path))

	a.DB = database
	a.ItemRepo = repository.NewItemRepo(database)
	return a.ItemRepo, nil
}

// Keyring returns the store holding the catalog database password
func (a *App) Keyring() crypto.Keyring {
	return a.keyring
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	if a.DB != nil {
		err := a.DB.Close()
		a.DB = nil
		a.ItemRepo = nil
		return err
	}
	return nil
}

// SaveConfig saves the current configuration to the path it was loaded from
func (a *App) SaveConfig() error {
	return a.Config.Save(a.ConfigPath)
}

// promptForPassword prompts user for a new database password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your item catalog will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}

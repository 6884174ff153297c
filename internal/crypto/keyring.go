package crypto

import (
	"errors"
	"os"
)

// ErrKeyringUnavailable means the password cannot be stored on this machine
var ErrKeyringUnavailable = errors.New("keyring not available on this platform")

// Keyring stores the catalog database password
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "toolrent"
	KeyName     = "catalog-db-key"

	// EnvKey overrides the platform keyring on every platform
	EnvKey = "TOOLRENT_DB_KEY"
)

// NewKeyring returns the best available keyring implementation.
// A set TOOLRENT_DB_KEY always wins so scripts and servers never prompt.
func NewKeyring() Keyring {
	if os.Getenv(EnvKey) != "" {
		return &envKeyring{}
	}
	return newPlatformKeyring()
}

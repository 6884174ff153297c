package crypto

import (
	"errors"
	"fmt"
	"os"
)

// envKeyring reads the password from TOOLRENT_DB_KEY and cannot write it
type envKeyring struct{}

func (k *envKeyring) GetKey() (string, error) {
	key := os.Getenv(EnvKey)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", EnvKey)
	}
	return key, nil
}

// SetKey tells the user to export the variable instead
func (k *envKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	return fmt.Errorf("%w: set %s (or add it to .env) and run again", ErrKeyringUnavailable, EnvKey)
}

func (k *envKeyring) DeleteKey() error {
	return fmt.Errorf("%w: unset %s manually", ErrKeyringUnavailable, EnvKey)
}

func (k *envKeyring) IsAvailable() bool {
	return os.Getenv(EnvKey) != ""
}

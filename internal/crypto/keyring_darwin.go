//go:build darwin

package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

type darwinKeyring struct{}

func newPlatformKeyring() Keyring {
	return &darwinKeyring{}
}

// GetKey reads the catalog database password from the macOS Keychain
func (k *darwinKeyring) GetKey() (string, error) {
	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("catalog key not found in keychain: %w", err)
		}
		return "", fmt.Errorf("failed to read catalog key from keychain: %w", err)
	}
	if key == "" {
		return "", errors.New("catalog key is empty")
	}
	return key, nil
}

// SetKey stores the catalog database password in the macOS Keychain
func (k *darwinKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store catalog key in keychain: %w", err)
	}
	return nil
}

// DeleteKey removes the catalog database password from the macOS Keychain
func (k *darwinKeyring) DeleteKey() error {
	if err := keyring.Delete(ServiceName, KeyName); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("catalog key not found in keychain: %w", err)
		}
		return fmt.Errorf("failed to delete catalog key from keychain: %w", err)
	}
	return nil
}

// IsAvailable probes the keychain with a throwaway entry
func (k *darwinKeyring) IsAvailable() bool {
	const probe = "__toolrent_probe__"
	if err := keyring.Set(ServiceName, probe, "probe"); err != nil {
		return false
	}
	_ = keyring.Delete(ServiceName, probe)
	return true
}

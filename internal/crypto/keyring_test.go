package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVariableWins(t *testing.T) {
	t.Setenv(EnvKey, "hunter2")

	k := NewKeyring()
	require.True(t, k.IsAvailable())

	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", key)
}

func TestEnvKeyringWithoutVariable(t *testing.T) {
	t.Setenv(EnvKey, "")
	k := &envKeyring{}

	assert.False(t, k.IsAvailable())

	_, err := k.GetKey()
	assert.ErrorContains(t, err, EnvKey)

	assert.Error(t, k.SetKey(""))
	err = k.SetKey("pw")
	assert.ErrorIs(t, err, ErrKeyringUnavailable)
	assert.ErrorContains(t, err, EnvKey)
	assert.ErrorIs(t, k.DeleteKey(), ErrKeyringUnavailable)
}

package config_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/fige/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutKey_Unset(t *testing.T) {
	c := &config.Checkout{}
	key, err := c.Key()
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestCheckoutKey_Base64(t *testing.T) {
	raw := []byte(strings.Repeat("k", 32))
	c := &config.Checkout{EncryptionKey: base64.StdEncoding.EncodeToString(raw)}

	key, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, raw, key)
}

func TestCheckoutKey_Raw32Bytes(t *testing.T) {
	c := &config.Checkout{EncryptionKey: strings.Repeat("s", 32)}

	key, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, []byte(strings.Repeat("s", 32)), key)
}

func TestCheckoutKey_WrongLength(t *testing.T) {
	c := &config.Checkout{EncryptionKey: "too-short"}
	_, err := c.Key()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	assert.False(t, (&config.App{Env: "development"}).IsProduction())
	assert.True(t, (&config.App{Env: "production"}).IsProduction())
}

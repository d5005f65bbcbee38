package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, commerce.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, commerce.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultReturnURL, cfg.ReturnURL)
	assert.NotEmpty(t, cfg.TokenPath)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `base_url: https://staging.example.com/api/v1
timeout: 5s
return_url: https://shop.example.com/
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "https://shop.example.com/", cfg.ReturnURL)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SHOPCTL_BASE_URL", "https://env.example.com/api/v1")
	t.Setenv("SHOPCTL_VERBOSE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api/v1", cfg.BaseURL)
	assert.True(t, cfg.Verbose)
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		BaseURL:   "https://staging.example.com/api/v1",
		Timeout:   10 * time.Second,
		TokenPath: "/tmp/token.json",
		ReturnURL: "https://shop.example.com/",
		Verbose:   true,
	}
	require.NoError(t, cfg.Write(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.BaseURL, loaded.BaseURL)
	assert.Equal(t, cfg.Timeout, loaded.Timeout)
	assert.Equal(t, cfg.TokenPath, loaded.TokenPath)
	assert.Equal(t, cfg.ReturnURL, loaded.ReturnURL)
	assert.True(t, loaded.Verbose)
}

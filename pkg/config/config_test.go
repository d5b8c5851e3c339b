package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mailcow-tools/scim-bridge/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
logging:
  log_level: debug
server:
  listen_address: ":9090"
  auth:
    bearer:
      token: scim-token
mailcow:
  api_url: https://mail.example.com/api/v1/
  api_key: secret
  default_domain: example.com
  admin_group_name: Mailcow Domain Admins
  default_password: changeme
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewConfig(t *testing.T) {
	assert := require.New(t)

	cfg, err := config.NewConfig(writeConfig(t, fullConfig))
	assert.NoError(err)

	assert.Equal(":9090", cfg.Server.ListenAddress)
	assert.Equal("scim-token", cfg.Server.Auth.Bearer.Token)
	assert.Equal("https://mail.example.com/api/v1/", cfg.Mailcow.APIURL)
	assert.Equal("example.com", cfg.Mailcow.DefaultDomain)
	assert.Equal("Mailcow Domain Admins", cfg.Mailcow.AdminGroupName)
	assert.Equal(zerolog.DebugLevel, cfg.Logging.LogLevelParsed)
}

func TestNewConfigMissingFile(t *testing.T) {
	assert := require.New(t)

	_, err := config.NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}

func TestNewConfigMissingRequiredValue(t *testing.T) {
	assert := require.New(t)

	partial := `
server:
  auth:
    bearer:
      token: scim-token
mailcow:
  api_url: https://mail.example.com/api/v1/
  default_domain: example.com
`

	_, err := config.NewConfig(writeConfig(t, partial))
	assert.ErrorIs(err, config.ErrInvalidConfig)
	assert.Contains(err.Error(), "mailcow.api_key")
}

func TestValidate(t *testing.T) {
	assert := require.New(t)

	cfg := &config.Config{}
	cfg.Server.Auth.Bearer.Token = "token"
	cfg.Mailcow = config.Mailcow{
		APIURL:          "https://mail.example.com/api/v1/",
		APIKey:          "key",
		DefaultDomain:   "example.com",
		AdminGroupName:  "Admins",
		DefaultPassword: "changeme",
	}

	assert.NoError(cfg.Validate())

	cfg.Mailcow.AdminGroupName = ""
	assert.ErrorIs(cfg.Validate(), config.ErrInvalidConfig)
}

func TestValidateMissingToken(t *testing.T) {
	assert := require.New(t)

	cfg := &config.Config{}
	cfg.Mailcow = config.Mailcow{
		APIURL:          "u",
		APIKey:          "k",
		DefaultDomain:   "d",
		AdminGroupName:  "g",
		DefaultPassword: "p",
	}

	err := cfg.Validate()
	assert.ErrorIs(err, config.ErrInvalidConfig)
	assert.Contains(err.Error(), "bearer.token")
}

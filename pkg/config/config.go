package config

import (
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Logging Logging `json:"logging"`
	Server  Server  `json:"server"`
	Mailcow Mailcow `json:"mailcow"`
}

type Logging struct {
	LogLevel       string        `json:"log_level"`
	LogLevelParsed zerolog.Level `json:"-"`
}

type Server struct {
	ListenAddress     string        `json:"listen_address"`
	ReadTimeout       time.Duration `json:"read_timeout"`
	ReadHeaderTimeout time.Duration `json:"read_header_timeout"`
	WriteTimeout      time.Duration `json:"write_timeout"`
	IdleTimeout       time.Duration `json:"idle_timeout"`
	Auth              Auth          `json:"auth"`
}

type Auth struct {
	Bearer struct {
		Token string `json:"token"`
	} `json:"bearer"`
}

// Mailcow holds the downstream API connection settings and the fixed
// provisioning parameters applied to every mailbox the bridge creates.
type Mailcow struct {
	APIURL          string `json:"api_url"`
	APIKey          string `json:"api_key"`
	DefaultDomain   string `json:"default_domain"`
	AdminGroupName  string `json:"admin_group_name"`
	DefaultPassword string `json:"default_password"`
}

func NewConfig(configPath string) (*Config, error) {
	file := "config.yaml"
	v := viper.New()

	if configPath != "" {
		exists, err := fileExists(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to determine if config file '%s' exists", configPath)
		}

		if !exists {
			return nil, errors.Errorf("config file '%s' doesn't exist", configPath)
		}

		file = configPath
	}

	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetConfigFile(file)
	v.SetEnvPrefix("SCIM_BRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults.
	v.SetDefault("server.listen_address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.read_header_timeout", "5s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "1m")
	v.SetDefault("logging.log_level", "")

	// Allow setting via env vars.
	v.SetDefault("server.auth.bearer.token", "")
	v.SetDefault("mailcow.api_url", "")
	v.SetDefault("mailcow.api_key", "")
	v.SetDefault("mailcow.default_domain", "")
	v.SetDefault("mailcow.admin_group_name", "")
	v.SetDefault("mailcow.default_password", "")

	configExists, err := fileExists(file)
	if err != nil {
		return nil, errors.Wrapf(err, "filesystem error")
	}

	if configExists {
		if err = v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file '%s'", file)
		}
	}
	v.AutomaticEnv()

	cfg := new(Config)

	err = v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config file")
	}

	if cfg.Logging.LogLevel == "" {
		cfg.Logging.LogLevelParsed = zerolog.InfoLevel
	} else {
		cfg.Logging.LogLevelParsed, err = zerolog.ParseLevel(cfg.Logging.LogLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "logging.log_level failed to parse")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Server.Auth.Bearer.Token == "" {
		return errors.Wrap(ErrInvalidConfig, "server.auth.bearer.token is required")
	}

	if cfg.Mailcow.APIURL == "" {
		return errors.Wrap(ErrInvalidConfig, "mailcow.api_url is required")
	}

	if cfg.Mailcow.APIKey == "" {
		return errors.Wrap(ErrInvalidConfig, "mailcow.api_key is required")
	}

	if cfg.Mailcow.DefaultDomain == "" {
		return errors.Wrap(ErrInvalidConfig, "mailcow.default_domain is required")
	}

	if cfg.Mailcow.AdminGroupName == "" {
		return errors.Wrap(ErrInvalidConfig, "mailcow.admin_group_name is required")
	}

	if cfg.Mailcow.DefaultPassword == "" {
		return errors.Wrap(ErrInvalidConfig, "mailcow.default_password is required")
	}

	return nil
}

func fileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, errors.Wrapf(err, "failed to stat file '%s'", path)
	}
}

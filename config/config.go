package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"servicename" yaml:"servicename"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout  time.Duration `json:"readtimeout" yaml:"readtimeout"`
			WriteTimeout time.Duration `json:"writetimeout" yaml:"writetimeout"`
			IdleTimeout  time.Duration `json:"idletimeout" yaml:"idletimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects and configures the key-value persistence backend.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretkey" yaml:"secretkey"`

	// SportsData configures the remote catalog client.
	SportsData SportsDataConfig `json:"sportsdata" yaml:"sportsdata"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the key-value persistence backend.
type StorageConfig struct {
	// Provider is "file", "sqlite" or "memory".
	Provider string `json:"provider" yaml:"provider"`

	// Path is the data directory for the file provider, or the database
	// file for the sqlite provider.
	Path string `json:"path" yaml:"path"`
}

// SportsDataConfig defines the remote sports catalog endpoint.
type SportsDataConfig struct {
	// BaseURL of the v1 JSON API, without a trailing slash.
	BaseURL string `json:"baseurl" yaml:"baseurl"`

	// APIKey is the key segment of the API path ("3" is the free tier).
	APIKey string `json:"apikey" yaml:"apikey"`

	// Timeout bounds a single upstream request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RequestsPerSecond caps the request rate against the upstream.
	RequestsPerSecond float64 `json:"requestspersecond" yaml:"requestspersecond"`
}

// LoadWithEnv loads .yaml files through koanf, then applies environment
// variable overrides (ENV_LOG_LEVEL -> env.log.level).
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for the config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Environment variables override file values. Underscores delimit
	// nesting: SPORTSDATA_APIKEY -> sportsdata.apikey.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "file"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data"
	}
	if cfg.SportsData.BaseURL == "" {
		cfg.SportsData.BaseURL = "https://www.thesportsdb.com/api/v1/json"
	}
	if cfg.SportsData.APIKey == "" {
		cfg.SportsData.APIKey = "3"
	}
	if cfg.SportsData.Timeout <= 0 {
		cfg.SportsData.Timeout = 10 * time.Second
	}
	if cfg.SportsData.RequestsPerSecond <= 0 {
		cfg.SportsData.RequestsPerSecond = 2
	}
}

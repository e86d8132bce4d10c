package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/integrations/gemini"
	"github.com/matzehuels/depscope/pkg/integrations/github"
)

// Defaults.
const (
	DefaultServerAddr  = ":8080"
	DefaultHTTPTimeout = 10 * time.Second
	DefaultDotEnv      = ".env"
)

// Environment variables. The DEPSCOPE_ names win over the unprefixed ones.
const (
	EnvGitHubToken  = "DEPSCOPE_GITHUB_TOKEN"
	EnvGeminiAPIKey = "DEPSCOPE_GEMINI_API_KEY"
	EnvGeminiModel  = "DEPSCOPE_GEMINI_MODEL"
	EnvGitHubAPIURL = "DEPSCOPE_GITHUB_API_URL"
	EnvServerAddr   = "DEPSCOPE_ADDR"
	EnvHTTPTimeout  = "DEPSCOPE_HTTP_TIMEOUT"

	envGitHubTokenFallback  = "GITHUB_TOKEN"
	envGeminiAPIKeyFallback = "GEMINI_API_KEY"
)

// Config holds everything the commands and the server need at startup.
type Config struct {
	GitHubToken  string        `toml:"github_token"`
	GeminiAPIKey string        `toml:"gemini_api_key"`
	GeminiModel  string        `toml:"gemini_model"`
	GitHubAPIURL string        `toml:"github_api_url"`
	ServerAddr   string        `toml:"addr"`
	HTTPTimeout  time.Duration `toml:"http_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GeminiModel:  gemini.DefaultModel,
		GitHubAPIURL: github.DefaultBaseURL,
		ServerAddr:   DefaultServerAddr,
		HTTPTimeout:  DefaultHTTPTimeout,
	}
}

// Loader resolves a Config from its sources. Later sources override earlier
// ones: defaults, the TOML file, the dotenv file, the process environment.
type Loader struct {
	// File is the TOML config path. Empty means DefaultPath, which may be absent.
	File string
	// DotEnv is the dotenv path. Empty means DefaultDotEnv; a missing file is skipped.
	DotEnv string
	// LookupEnv reads the process environment. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load resolves a Config with the default dotenv file and process environment.
// An explicit path must exist.
func Load(path string) (*Config, error) {
	return Loader{File: path}.Load()
}

// Load resolves the configuration.
func (l Loader) Load() (*Config, error) {
	cfg := Default()

	if err := l.loadFile(cfg); err != nil {
		return nil, err
	}

	dotenv, err := l.readDotEnv()
	if err != nil {
		return nil, err
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	// The process environment wins over .env for every key, fallbacks included.
	get := func(keys ...string) (string, bool) {
		for _, k := range keys {
			if v, ok := lookup(k); ok && v != "" {
				return v, true
			}
		}
		for _, k := range keys {
			if v, ok := dotenv[k]; ok && v != "" {
				return v, true
			}
		}
		return "", false
	}

	if v, ok := get(EnvGitHubToken, envGitHubTokenFallback); ok {
		cfg.GitHubToken = v
	}
	if v, ok := get(EnvGeminiAPIKey, envGeminiAPIKeyFallback); ok {
		cfg.GeminiAPIKey = v
	}
	if v, ok := get(EnvGeminiModel); ok {
		cfg.GeminiModel = v
	}
	if v, ok := get(EnvGitHubAPIURL); ok {
		cfg.GitHubAPIURL = v
	}
	if v, ok := get(EnvServerAddr); ok {
		cfg.ServerAddr = v
	}
	if v, ok := get(EnvHTTPTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", EnvHTTPTimeout, v)
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l Loader) loadFile(cfg *Config) error {
	path, explicit := l.File, l.File != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	return nil
}

func (l Loader) readDotEnv() (map[string]string, error) {
	path := l.DotEnv
	if path == "" {
		path = DefaultDotEnv
	}
	env, err := godotenv.Read(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return env, nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "http timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.GitHubAPIURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "github api url must not be empty")
	}
	if c.ServerAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "server address must not be empty")
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/depscope/config.toml, falling back to
// ~/.config/depscope/config.toml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "depscope", "config.toml"), nil
}

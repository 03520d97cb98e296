// Package config holds the settings vitelink needs to build a resolver:
// which mode to run in, where the Vite dev server lives and where the
// production manifest can be read from.
//
// Settings come from Default, optionally overlaid by a YAML/JSON file
// (LoadFile) or by environment variables (FromEnv). Command line flags are
// applied on top by the cmd package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bmeg/vitelink/util"
	"github.com/joho/godotenv"
	"sigs.k8s.io/yaml"
)

// Mode selects between the dev server and the production manifest.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

const (
	DefaultHost         = "http://localhost:5173"
	DefaultManifestPath = "dist/.vite/manifest.json"
)

type Config struct {
	// Mode is either development or production.
	Mode Mode `json:"mode"`

	// Host is the dev server origin. Only used in development.
	Host string `json:"host"`

	// ManifestPath is a local path or s3+http(s) URL of the build manifest.
	// Only used in production.
	ManifestPath string `json:"manifestPath"`

	// ManifestSource is an inline manifest document. When set it takes
	// precedence over ManifestPath.
	ManifestSource string `json:"manifestSource,omitempty"`

	// Base is the public path production assets are served from, such as
	// "/" or a CDN URL. Empty leaves manifest paths untouched.
	Base string `json:"base,omitempty"`

	// CacheSize is the number of rendered fragments kept in production
	// mode. Zero disables the cache.
	CacheSize int `json:"cacheSize"`
}

// Default returns the default configuration with the mode guessed from the
// environment.
func Default() *Config {
	return &Config{
		Mode:         GuessMode(),
		Host:         DefaultHost,
		ManifestPath: DefaultManifestPath,
		CacheSize:    128,
	}
}

// GuessMode looks at LOCO_ENV, RAILS_ENV and NODE_ENV, in that order, and
// returns Production when the first one that is set says "production".
func GuessMode() Mode {
	env := firstNonEmpty(os.Getenv("LOCO_ENV"), os.Getenv("RAILS_ENV"), os.Getenv("NODE_ENV"))
	if strings.EqualFold(strings.TrimSpace(env), string(Production)) {
		return Production
	}
	return Development
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// LoadFile parses a YAML (or JSON) config file over the defaults.
func LoadFile(relpath string) (*Config, error) {
	conf := Default()
	if relpath == "" {
		return conf, nil
	}
	path := util.AbsPath(relpath)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config at path %s: \n%v", path, err)
	}
	if err := yaml.UnmarshalStrict(raw, conf); err != nil {
		return nil, fmt.Errorf("failed to parse config at path %s: \n%v", path, err)
	}
	if conf.Mode != "" {
		mode, err := ParseMode(string(conf.Mode))
		if err != nil {
			return nil, fmt.Errorf("failed to parse config at path %s: \n%v", path, err)
		}
		conf.Mode = mode
	} else {
		conf.Mode = GuessMode()
	}
	return conf, nil
}

// FromEnv loads a .env file from the working directory when one exists and
// applies VITE_MODE, VITE_HOST, VITE_MANIFEST and VITE_CACHE_SIZE over the
// defaults.
func FromEnv() (*Config, error) {
	if util.Exists(".env") {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}
	conf := Default()
	if err := conf.ApplyEnv(); err != nil {
		return nil, err
	}
	return conf, nil
}

// ApplyEnv overrides fields with the VITE_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv("VITE_MODE")); v != "" {
		mode, err := ParseMode(v)
		if err != nil {
			return fmt.Errorf("VITE_MODE: %w", err)
		}
		c.Mode = mode
	}
	if v := strings.TrimSpace(os.Getenv("VITE_HOST")); v != "" {
		c.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("VITE_MANIFEST")); v != "" {
		c.ManifestPath = v
	}
	if v := strings.TrimSpace(os.Getenv("VITE_CACHE_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VITE_CACHE_SIZE: %w", err)
		}
		c.CacheSize = n
	}
	return nil
}

// Validate catches configuration mistakes before any request is served.
func (c *Config) Validate() error {
	switch c.Mode {
	case Development:
		if strings.TrimSpace(c.Host) == "" {
			return fmt.Errorf("host is required in development mode")
		}
	case Production:
		if c.ManifestSource == "" && strings.TrimSpace(c.ManifestPath) == "" {
			return fmt.Errorf("manifestPath or manifestSource is required in production mode")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cacheSize must not be negative")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

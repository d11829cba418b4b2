package stockview

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFile is the name of the configuration file looked up in the project root.
const EnvFile = "stockview.env"

// Keys of the configuration file, also read from the process environment
// with a "STOCKVIEW_" prefix.
const (
	KeyAPIKey   = "API_KEY"
	KeyURL      = "URL"
	KeyFunction = "FUNCTION"

	envPrefix = "STOCKVIEW_"
)

// Config locates the remote price API.
type Config struct {
	APIKey   string
	URL      string // base address, "/query" is appended
	Function string // time series function, e.g. TIME_SERIES_DAILY
}

// DefaultConfig targets the Alpha Vantage daily time series, without a key.
func DefaultConfig() Config {
	return Config{
		URL:      "https://www.alphavantage.co",
		Function: "TIME_SERIES_DAILY",
	}
}

// Validate reports a missing setting.
func (c Config) Validate() error {
	switch {
	case c.APIKey == "":
		return fmt.Errorf("%s not found in %s nor in %s%s", KeyAPIKey, EnvFile, envPrefix, KeyAPIKey)
	case c.URL == "":
		return fmt.Errorf("%s is empty", KeyURL)
	case c.Function == "":
		return fmt.Errorf("%s is empty", KeyFunction)
	}
	return nil
}

// LoadConfig builds the configuration from the defaults, overridden by the
// env file of the project root above dir, overridden by the process
// environment. A missing env file is not an error.
func LoadConfig(dir string) (Config, error) {
	c := DefaultConfig()

	if root, ok := FindProjectRoot(dir); ok {
		path := filepath.Join(root, EnvFile)
		env, err := ReadEnvFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults and environment only
		case err != nil:
			return c, err
		default:
			log.Printf("configuration loaded from %s", path)
			c.apply(func(key string) (string, bool) {
				v, ok := env[key]
				return v, ok
			})
		}
	}
	c.apply(func(key string) (string, bool) { return os.LookupEnv(envPrefix + key) })
	return c, nil
}

// apply overrides the settings for which lookup finds a value.
func (c *Config) apply(lookup func(key string) (string, bool)) {
	if v, ok := lookup(KeyAPIKey); ok {
		c.APIKey = v
	}
	if v, ok := lookup(KeyURL); ok {
		c.URL = v
	}
	if v, ok := lookup(KeyFunction); ok {
		c.Function = v
	}
}

// FindProjectRoot walks up from dir to the first directory holding the env
// file, a ".env" or a ".git" entry.
func FindProjectRoot(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, marker := range []string{EnvFile, ".env", ".git"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ReadEnvFile reads a dotenv file.
func ReadEnvFile(path string) (map[string]string, error) { return godotenv.Read(path) }

// ParseEnv parses dotenv KEY=VALUE lines: comments, quoted values and the
// "export" prefix are accepted.
func ParseEnv(r io.Reader) (map[string]string, error) { return godotenv.Parse(r) }

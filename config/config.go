// Package config resolves the process-wide Shopify settings once at startup.
//
// Values come from the environment, optionally seeded by a dotenv file.
// Variables already present in the environment always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jonwraymond/shopifymcp/admin"
)

// Environment variable names.
const (
	EnvAccessToken = "SHOPIFY_ACCESS_TOKEN"
	EnvStoreName   = "SHOPIFY_STORE_NAME"
	EnvAPIVersion  = "SHOPIFY_API_VERSION"
	EnvAPIURL      = "SHOPIFY_API_URL"
)

// DefaultEnvFileName is looked up next to the executable when no file is given.
const DefaultEnvFileName = ".env"

// Errors returned by Load and Validate.
var (
	ErrEnvFile            = errors.New("config: cannot read env file")
	ErrMissingAccessToken = errors.New("config: " + EnvAccessToken + " is not set")
	ErrMissingStoreName   = errors.New("config: " + EnvStoreName + " is not set")
)

// Options controls where Load reads from.
type Options struct {
	// EnvFile is an explicit dotenv path. It must exist when set.
	// When empty, DefaultEnvFileName beside the executable is read if present.
	EnvFile string

	// SkipEnvFile disables dotenv loading entirely.
	SkipEnvFile bool

	// LookupEnv reads process variables.
	// Default: os.LookupEnv
	LookupEnv func(key string) (string, bool)

	// Logger is passed through to the resulting admin.Config.
	Logger admin.Logger
}

// Load builds an admin.Config from the environment and the optional dotenv
// file. Missing credentials are not reported here; see Validate.
func Load(opts Options) (admin.Config, error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	fileVars, err := readEnvFile(opts)
	if err != nil {
		return admin.Config{}, err
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileVars[key])
	}

	return admin.Config{
		AccessToken: get(EnvAccessToken),
		StoreName:   get(EnvStoreName),
		APIVersion:  get(EnvAPIVersion),
		Endpoint:    get(EnvAPIURL),
		Logger:      opts.Logger,
	}, nil
}

// Validate reports every missing essential setting, joined.
func Validate(cfg admin.Config) error {
	var errs []error
	if cfg.AccessToken == "" {
		errs = append(errs, ErrMissingAccessToken)
	}
	if cfg.StoreName == "" && cfg.Endpoint == "" {
		errs = append(errs, ErrMissingStoreName)
	}
	return errors.Join(errs...)
}

func readEnvFile(opts Options) (map[string]string, error) {
	if opts.SkipEnvFile {
		return nil, nil
	}

	path := opts.EnvFile
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile()
		if path == "" {
			return nil, nil
		}
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}
	return vars, nil
}

func defaultEnvFile() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), DefaultEnvFileName)
}

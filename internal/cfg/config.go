// Package cfg loads the sparsedemo configuration from an optional .env file
// and SPARSE_* environment variables.
package cfg

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. SPARSE_DIMENSION.
const Prefix = "SPARSE"

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"

	DefaultEnv = EnvDev
)

// Environment selects the logger flavour.
type Environment string

// Validate accepts only dev and prod.
func (e Environment) Validate() error {
	if e != EnvDev && e != EnvProd {
		return errors.Errorf("environment must be either %s or %s, got %q", EnvDev, EnvProd, e)
	}

	return nil
}

// Config drives the diagonal demo.
type Config struct {
	Environment Environment `default:"dev"`

	// Dimension is n: both diagonals of the n×n area are filled.
	Dimension int `default:"10"`

	// FragmentFrom and FragmentTo bound the printed window [from..to]×[from..to].
	FragmentFrom int `split_words:"true" default:"1"`
	FragmentTo   int `split_words:"true" default:"8"`

	// Output is a file path; empty means stdout.
	Output string
}

// Load reads path (when non-empty) or ./.env (when present) into the process
// environment, then decodes SPARSE_* variables into a validated Config.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, errors.Wrapf(err, "load env file %q", path)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "process env")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the window and dimension.
func (c Config) Validate() error {
	if err := c.Environment.Validate(); err != nil {
		return errors.Wrap(err, "environment validation")
	}
	if c.Dimension <= 0 {
		return errors.Errorf("dimension must be > 0, got %d", c.Dimension)
	}
	if c.FragmentFrom < 0 || c.FragmentTo < c.FragmentFrom {
		return errors.Errorf("invalid fragment window [%d..%d]", c.FragmentFrom, c.FragmentTo)
	}

	return nil
}

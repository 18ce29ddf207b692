package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	envparser "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv copies variables from the dotenv files that exist into the process
// environment. Variables that are already set keep their value.
func LoadDotEnv(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		_, err := os.Stat(file)
		switch {
		case err == nil:
			existing = append(existing, file)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("failed to stat %s: %w", file, err)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load dotenv files: %w", err)
	}

	return nil
}

// Parse builds a T from `env` struct tags.
func Parse[T any]() (T, error) {
	var cfg T
	if err := envparser.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Package keys reads and writes the API client credentials kept in a .env
// file next to the config.
package keys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/skinledger/skinledger/internal/skinport"
)

// DefaultPath is the env file used when none is given.
const DefaultPath = ".env"

const (
	envClientID     = "API_CLIENT_ID"
	envClientSecret = "API_CLIENT_SECRET"
)

// ErrMissing is returned when either half of the credentials is empty.
var ErrMissing = errors.New("API client id and secret are required (run `skinledger keys save` or set API_CLIENT_ID and API_CLIENT_SECRET)")

// Load returns credentials from the environment, falling back to the env
// file at path. A missing file is not an error; missing values are.
func Load(path string) (skinport.Credentials, error) {
	fileVals, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return skinport.Credentials{}, fmt.Errorf("reading %s: %w", path, err)
	}

	creds := skinport.Credentials{
		ClientID:     lookup(envClientID, fileVals),
		ClientSecret: lookup(envClientSecret, fileVals),
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return skinport.Credentials{}, ErrMissing
	}
	return creds, nil
}

// Save writes creds to the env file at path, replacing its contents.
func Save(path string, creds skinport.Credentials) error {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return ErrMissing
	}
	vals := map[string]string{
		envClientID:     creds.ClientID,
		envClientSecret: creds.ClientSecret,
	}
	if err := godotenv.Write(vals, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restricting %s: %w", path, err)
	}
	return nil
}

func lookup(key string, fileVals map[string]string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fileVals[key]
}

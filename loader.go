package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadRegistry opens, decodes, and returns the account registry stored at
// path. A missing file is not an error: it loads an empty registry, so a
// fresh install works without setup.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open registry file %q: %w", path, err)
	}
	defer f.Close()

	registry, err := DecodeRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode registry file %q: %w", path, err)
	}
	return registry, nil
}

// SaveRegistry overwrites the registry file at path with one record per
// account. There is no merge and no backup.
func SaveRegistry(path string, registry *Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening registry file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeRegistry(f, registry); err != nil {
		return fmt.Errorf("could not encode registry file %q: %w", path, err)
	}
	return nil
}

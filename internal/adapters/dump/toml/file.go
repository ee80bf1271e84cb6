package toml

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/dsec/internal/domain"
)

const (
	bundleFileMode  = 0o600
	bundleDirMode   = 0o700
	tempFilePattern = ".dsec-bundle-*.toml.tmp"
)

// ReadFile decodes the bundle stored at path.
func ReadFile(path string) (domain.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("read bundle file: %w", err)
	}

	bundle, err := Decode(bytes.NewReader(data))
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("%s: %w", path, err)
	}

	return bundle, nil
}

// WriteFile replaces path with the encoded bundle. The file is written next
// to its destination and renamed into place, so readers never observe a
// partial bundle.
func WriteFile(path string, bundle domain.Bundle) (err error) {
	var buf bytes.Buffer
	if err := Encode(&buf, bundle); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, bundleDirMode); err != nil {
		return fmt.Errorf("create bundle directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp bundle file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			if removeErr := os.Remove(tempName); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				err = errors.Join(err, removeErr)
			}
		}
	}()

	if _, err := tempFile.Write(buf.Bytes()); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp bundle file: %w", err)
	}

	if err := tempFile.Chmod(bundleFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp bundle file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp bundle file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace bundle file: %w", err)
	}
	cleanup = false

	return nil
}

package toml

import "fmt"

const currentSchemaVersion = 1

type bundleSchema struct {
	Version int         `toml:"version"`
	Apps    []appSchema `toml:"apps"`
}

func (s *bundleSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s bundleSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported bundle schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type appSchema struct {
	ID        string         `toml:"id"`
	Name      string         `toml:"name"`
	CreatedAt string         `toml:"created_at,omitempty"`
	Secrets   []secretSchema `toml:"secrets,omitempty"`
}

type secretSchema struct {
	Key       string `toml:"key"`
	Value     string `toml:"value"`
	CreatedAt string `toml:"created_at,omitempty"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}

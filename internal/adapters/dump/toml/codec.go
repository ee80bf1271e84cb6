package toml

import (
	"fmt"
	"io"
	"time"

	"github.com/bnema/dsec/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

// Encode writes bundle as a versioned TOML document.
func Encode(w io.Writer, bundle domain.Bundle) error {
	file := toSchema(bundle)
	file.applyDefaults()

	if err := toml.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}

	return nil
}

// Decode reads a bundle written by Encode. Documents from a newer schema
// version are rejected; a missing version is read as the current one.
func Decode(r io.Reader) (domain.Bundle, error) {
	var file bundleSchema
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return domain.Bundle{}, fmt.Errorf("%w: decode bundle: %w", domain.ErrValidation, err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Bundle{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	file.applyDefaults()

	bundle, err := fromSchema(file)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	return bundle, nil
}

func toSchema(bundle domain.Bundle) bundleSchema {
	file := bundleSchema{Version: currentSchemaVersion, Apps: make([]appSchema, 0, len(bundle.Apps))}
	for _, entry := range bundle.Apps {
		app := appSchema{
			ID:        string(entry.App.ID),
			Name:      entry.App.Name,
			CreatedAt: formatTime(entry.App.CreatedAt),
		}
		for _, secret := range entry.Secrets {
			app.Secrets = append(app.Secrets, secretSchema{
				Key:       secret.Key,
				Value:     secret.Value,
				CreatedAt: formatTime(secret.CreatedAt),
				UpdatedAt: formatTime(secret.UpdatedAt),
			})
		}
		file.Apps = append(file.Apps, app)
	}

	return file
}

func fromSchema(file bundleSchema) (domain.Bundle, error) {
	bundle := domain.Bundle{Apps: make([]domain.AppBundle, 0, len(file.Apps))}
	for _, app := range file.Apps {
		appCreatedAt, err := parseTime(app.CreatedAt)
		if err != nil {
			return domain.Bundle{}, fmt.Errorf("app %q created_at: %w", app.ID, err)
		}

		entry := domain.AppBundle{
			App: domain.App{
				ID:        domain.AppID(app.ID),
				Name:      app.Name,
				CreatedAt: appCreatedAt,
			},
			Secrets: make([]domain.Secret, 0, len(app.Secrets)),
		}
		for _, secret := range app.Secrets {
			createdAt, err := parseTime(secret.CreatedAt)
			if err != nil {
				return domain.Bundle{}, fmt.Errorf("secret %q in app %q created_at: %w", secret.Key, app.ID, err)
			}
			updatedAt, err := parseTime(secret.UpdatedAt)
			if err != nil {
				return domain.Bundle{}, fmt.Errorf("secret %q in app %q updated_at: %w", secret.Key, app.ID, err)
			}

			entry.Secrets = append(entry.Secrets, domain.Secret{
				Key:       secret.Key,
				Value:     secret.Value,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			})
		}
		bundle.Apps = append(bundle.Apps, entry)
	}

	return bundle, nil
}

// parseTime reads an RFC 3339 timestamp. An empty string is the zero time.
func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}

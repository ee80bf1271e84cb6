package domain

import "fmt"

// Bundle is a portable snapshot of apps and their secrets, used for export
// and import.
type Bundle struct {
	Apps []AppBundle
}

type AppBundle struct {
	App     App
	Secrets []Secret
}

// Validate checks every identifier in the bundle and rejects duplicate app
// ids or duplicate keys within one app.
func (b Bundle) Validate() error {
	seenApps := make(map[AppID]struct{}, len(b.Apps))
	for _, entry := range b.Apps {
		if err := entry.App.ID.Validate(); err != nil {
			return err
		}
		if _, ok := seenApps[entry.App.ID]; ok {
			return fmtDuplicate("app id", string(entry.App.ID))
		}
		seenApps[entry.App.ID] = struct{}{}

		seenKeys := make(map[string]struct{}, len(entry.Secrets))
		for _, secret := range entry.Secrets {
			if err := ValidateSecretKey(secret.Key); err != nil {
				return err
			}
			if _, ok := seenKeys[secret.Key]; ok {
				return fmtDuplicate("key in app "+string(entry.App.ID), secret.Key)
			}
			seenKeys[secret.Key] = struct{}{}
		}
	}

	return nil
}

func fmtDuplicate(field, value string) error {
	return fmt.Errorf("%w: duplicate %s %q", ErrValidation, field, value)
}

package application

import (
	"context"
	"fmt"

	"github.com/bnema/dsec/internal/domain"
	"github.com/bnema/dsec/internal/ports"
	"go.uber.org/zap"
)

type ImportReport struct {
	Created        []domain.AppID
	Updated        []domain.AppID
	Skipped        []domain.AppID
	SecretsWritten int
}

// TransferService moves apps and their secrets in and out of the store as
// bundles.
type TransferService struct {
	units    ports.UnitStore
	registry ports.TenantRegistry
	clock    ports.Clock
	logger   *zap.Logger
}

func NewTransferService(units ports.UnitStore, registry ports.TenantRegistry, clock ports.Clock, logger *zap.Logger) *TransferService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TransferService{units: units, registry: registry, clock: clock, logger: logger}
}

// Export snapshots the given apps, or every app when ids is empty.
func (s *TransferService) Export(ctx context.Context, ids ...domain.AppID) (domain.Bundle, error) {
	apps, err := s.resolveApps(ctx, ids)
	if err != nil {
		return domain.Bundle{}, err
	}

	bundle := domain.Bundle{Apps: make([]domain.AppBundle, 0, len(apps))}
	for _, app := range apps {
		secrets, err := s.units.ListSecrets(ctx, app.ID)
		if err != nil {
			return domain.Bundle{}, fmt.Errorf("export app %q: %w", app.ID, err)
		}
		bundle.Apps = append(bundle.Apps, domain.AppBundle{App: app, Secrets: secrets})
	}

	s.logger.Debug("apps exported", zap.Int("apps", len(bundle.Apps)))
	return bundle, nil
}

// Import writes bundle into the store. Apps that already exist are left
// untouched unless overwrite is set, in which case their secrets are
// upserted as fresh writes. Apps created by the import keep the bundle's
// secret timestamps. Nothing is written when the bundle fails validation.
func (s *TransferService) Import(ctx context.Context, bundle domain.Bundle, overwrite bool) (ImportReport, error) {
	var report ImportReport
	if err := bundle.Validate(); err != nil {
		return report, err
	}

	for _, entry := range bundle.Apps {
		id := entry.App.ID
		created := false
		if s.units.Exists(ctx, id) {
			if !overwrite {
				report.Skipped = append(report.Skipped, id)
				s.logger.Debug("import skipped existing app", zap.String("app_id", string(id)))
				continue
			}
			report.Updated = append(report.Updated, id)
		} else {
			name := entry.App.Name
			if name == "" {
				name = string(id)
			}
			createdAt := entry.App.CreatedAt
			if createdAt.IsZero() {
				createdAt = s.clock.Now()
			}
			if err := s.units.Create(ctx, id, name, createdAt); err != nil {
				return report, fmt.Errorf("import app %q: %w", id, err)
			}
			report.Created = append(report.Created, id)
			created = true
		}

		for _, secret := range entry.Secrets {
			if err := s.importSecret(ctx, id, secret, created); err != nil {
				return report, fmt.Errorf("import secret %q into app %q: %w", secret.Key, id, err)
			}
			report.SecretsWritten++
		}
	}

	s.logger.Debug("apps imported",
		zap.Int("created", len(report.Created)),
		zap.Int("updated", len(report.Updated)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("secrets", report.SecretsWritten),
	)
	return report, nil
}

func (s *TransferService) importSecret(ctx context.Context, id domain.AppID, secret domain.Secret, created bool) error {
	if !created {
		return s.units.UpsertSecret(ctx, id, secret.Key, secret.Value, s.clock.Now())
	}

	if secret.CreatedAt.IsZero() || secret.UpdatedAt.IsZero() {
		now := s.clock.Now()
		if secret.CreatedAt.IsZero() {
			secret.CreatedAt = now
		}
		if secret.UpdatedAt.IsZero() {
			secret.UpdatedAt = secret.CreatedAt
		}
	}

	return s.units.RestoreSecret(ctx, id, secret)
}

func (s *TransferService) resolveApps(ctx context.Context, ids []domain.AppID) ([]domain.App, error) {
	if len(ids) == 0 {
		apps, err := s.registry.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list apps: %w", err)
		}
		return apps, nil
	}

	apps := make([]domain.App, 0, len(ids))
	for _, id := range ids {
		if !s.units.Exists(ctx, id) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAppNotFound, id)
		}
		app, err := describeUnit(ctx, s.units, id)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, nil
}

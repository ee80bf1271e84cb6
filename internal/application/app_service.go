package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/dsec/internal/domain"
	"github.com/bnema/dsec/internal/metrics"
	"github.com/bnema/dsec/internal/ports"
	"go.uber.org/zap"
)

// AppService manages app lifecycles. An app exists exactly when its storage
// unit exists.
type AppService struct {
	units    ports.UnitStore
	registry ports.TenantRegistry
	clock    ports.Clock
	logger   *zap.Logger
}

func NewAppService(units ports.UnitStore, registry ports.TenantRegistry, clock ports.Clock, logger *zap.Logger) *AppService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AppService{units: units, registry: registry, clock: clock, logger: logger}
}

func (s *AppService) CreateApp(ctx context.Context, id domain.AppID, name string) (domain.App, error) {
	if s.units.Exists(ctx, id) {
		return domain.App{}, fmt.Errorf("%w: %s", domain.ErrAppAlreadyExists, id)
	}

	now := s.clock.Now()
	if err := s.units.Create(ctx, id, name, now); err != nil {
		return domain.App{}, fmt.Errorf("create app %q: %w", id, err)
	}

	app, err := describeUnit(ctx, s.units, id)
	if err != nil {
		return domain.App{}, err
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}

	s.logger.Debug("app created", zap.String("app_id", string(id)), zap.String("name", app.Name))
	return app, nil
}

func (s *AppService) DeleteApp(ctx context.Context, id domain.AppID) error {
	if !s.units.Exists(ctx, id) {
		return fmt.Errorf("%w: %s", domain.ErrAppNotFound, id)
	}

	if err := s.units.Destroy(ctx, id); err != nil {
		return fmt.Errorf("delete app %q: %w", id, err)
	}

	s.logger.Debug("app deleted", zap.String("app_id", string(id)))
	return nil
}

// GetApp reports ok=false rather than an error when the app does not exist.
func (s *AppService) GetApp(ctx context.Context, id domain.AppID) (domain.App, bool, error) {
	if !s.units.Exists(ctx, id) {
		return domain.App{}, false, nil
	}

	app, err := describeUnit(ctx, s.units, id)
	if err != nil {
		return domain.App{}, false, err
	}

	return app, true, nil
}

func (s *AppService) ListApps(ctx context.Context) ([]domain.AppSummary, error) {
	apps, err := s.registry.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}

	summaries := make([]domain.AppSummary, 0, len(apps))
	for _, app := range apps {
		count, err := s.units.CountSecrets(ctx, app.ID)
		if err != nil {
			return nil, fmt.Errorf("count secrets for app %q: %w", app.ID, err)
		}
		summaries = append(summaries, app.Summary(count))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	metrics.SetAppsTotal(len(summaries))

	return summaries, nil
}

func describeUnit(ctx context.Context, units ports.UnitStore, id domain.AppID) (domain.App, error) {
	meta, err := units.Metadata(ctx, id)
	if err != nil {
		return domain.App{}, fmt.Errorf("read app %q: %w", id, err)
	}

	app := domain.App{ID: id, Name: meta.Name, CreatedAt: meta.CreatedAt}
	if app.Name == "" {
		app.Name = string(id)
	}

	return app, nil
}

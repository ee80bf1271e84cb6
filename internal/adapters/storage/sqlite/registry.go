package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/dsec/internal/domain"
	"github.com/bnema/dsec/internal/ports"
	"go.uber.org/zap"
)

// Registry discovers apps by scanning the storage root for unit files.
// Nothing is cached: every call rescans the directory.
type Registry struct {
	root   string
	units  ports.UnitStore
	logger *zap.Logger
}

var _ ports.TenantRegistry = (*Registry)(nil)

func NewRegistry(root string, units ports.UnitStore, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{root: filepath.Clean(root), units: units, logger: logger}
}

func (r *Registry) ListAll(ctx context.Context) (apps []domain.App, err error) {
	defer observe("list_units", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.App{}, nil
		}
		return nil, fmt.Errorf("%w: scan storage root %q: %w", domain.ErrStorageFailure, r.root, err)
	}

	apps = make([]domain.App, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), unitExtension) {
			continue
		}

		id := domain.AppID(strings.TrimSuffix(entry.Name(), unitExtension))
		if err := id.Validate(); err != nil {
			r.logger.Debug("skip unaddressable unit file", zap.String("file", entry.Name()))
			continue
		}

		apps = append(apps, r.describe(ctx, id, entry))
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID < apps[j].ID
	})

	return apps, nil
}

func (r *Registry) describe(ctx context.Context, id domain.AppID, entry os.DirEntry) domain.App {
	app := domain.App{ID: id, Name: string(id)}

	meta, err := r.units.Metadata(ctx, id)
	if err != nil {
		r.logger.Debug("unit metadata unreadable, falling back to id", zap.String("app_id", string(id)), zap.Error(err))
	} else {
		if meta.Name != "" {
			app.Name = meta.Name
		}
		app.CreatedAt = meta.CreatedAt
	}

	if app.CreatedAt.IsZero() {
		if info, err := entry.Info(); err == nil {
			app.CreatedAt = info.ModTime().UTC()
		}
	}

	return app
}

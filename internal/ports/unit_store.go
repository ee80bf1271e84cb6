package ports

import (
	"context"
	"time"

	"github.com/bnema/dsec/internal/domain"
)

// UnitMetadata is the name/creation slot recorded when a unit is created.
// Zero values mean the slot is missing.
type UnitMetadata struct {
	Name      string
	CreatedAt time.Time
}

// UnitStore manages one durable storage unit per app.
type UnitStore interface {
	Create(ctx context.Context, id domain.AppID, name string, createdAt time.Time) error
	Destroy(ctx context.Context, id domain.AppID) error
	Exists(ctx context.Context, id domain.AppID) bool
	Metadata(ctx context.Context, id domain.AppID) (UnitMetadata, error)
	ListSecrets(ctx context.Context, id domain.AppID) ([]domain.Secret, error)
	GetSecret(ctx context.Context, id domain.AppID, key string) (domain.Secret, bool, error)
	UpsertSecret(ctx context.Context, id domain.AppID, key string, value string, now time.Time) error
	// RestoreSecret writes secret with its own timestamps. An existing key
	// keeps its createdAt.
	RestoreSecret(ctx context.Context, id domain.AppID, secret domain.Secret) error
	DeleteSecret(ctx context.Context, id domain.AppID, key string) error
	CountSecrets(ctx context.Context, id domain.AppID) (int, error)
}

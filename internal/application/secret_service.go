package application

import (
	"context"
	"fmt"

	"github.com/bnema/dsec/internal/domain"
	"github.com/bnema/dsec/internal/ports"
	"go.uber.org/zap"
)

// SecretService guards every secret operation with an app existence check.
// The check and the operation are separate calls; an app deleted in between
// surfaces as a storage failure.
type SecretService struct {
	units  ports.UnitStore
	clock  ports.Clock
	logger *zap.Logger
}

func NewSecretService(units ports.UnitStore, clock ports.Clock, logger *zap.Logger) *SecretService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SecretService{units: units, clock: clock, logger: logger}
}

func (s *SecretService) ListSecrets(ctx context.Context, appID domain.AppID) ([]domain.Secret, error) {
	if err := s.requireApp(ctx, appID); err != nil {
		return nil, err
	}

	secrets, err := s.units.ListSecrets(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("list secrets: %w", err)
	}

	return secrets, nil
}

func (s *SecretService) GetSecret(ctx context.Context, appID domain.AppID, key string) (domain.Secret, bool, error) {
	if err := s.requireApp(ctx, appID); err != nil {
		return domain.Secret{}, false, err
	}

	secret, found, err := s.units.GetSecret(ctx, appID, key)
	if err != nil {
		return domain.Secret{}, false, fmt.Errorf("get secret: %w", err)
	}

	return secret, found, nil
}

// RequireSecret is GetSecret for callers that treat absence as an error.
func (s *SecretService) RequireSecret(ctx context.Context, appID domain.AppID, key string) (domain.Secret, error) {
	secret, found, err := s.GetSecret(ctx, appID, key)
	if err != nil {
		return domain.Secret{}, err
	}
	if !found {
		return domain.Secret{}, fmt.Errorf("%w: %s/%s", domain.ErrSecretNotFound, appID, key)
	}

	return secret, nil
}

// AddSecret inserts or replaces key and returns the stored row.
func (s *SecretService) AddSecret(ctx context.Context, appID domain.AppID, key, value string) (domain.Secret, error) {
	if err := s.requireApp(ctx, appID); err != nil {
		return domain.Secret{}, err
	}

	if err := s.units.UpsertSecret(ctx, appID, key, value, s.clock.Now()); err != nil {
		return domain.Secret{}, fmt.Errorf("store secret: %w", err)
	}

	secret, found, err := s.units.GetSecret(ctx, appID, key)
	if err != nil {
		return domain.Secret{}, fmt.Errorf("read back secret: %w", err)
	}
	if !found {
		return domain.Secret{}, fmt.Errorf("%w: secret %s/%s missing right after upsert", domain.ErrInternalConsistency, appID, key)
	}

	s.logger.Debug("secret stored", zap.String("app_id", string(appID)), zap.String("key", key))
	return secret, nil
}

// DeleteSecret succeeds whether or not the key was present.
func (s *SecretService) DeleteSecret(ctx context.Context, appID domain.AppID, key string) error {
	if err := s.requireApp(ctx, appID); err != nil {
		return err
	}

	if err := s.units.DeleteSecret(ctx, appID, key); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}

	s.logger.Debug("secret deleted", zap.String("app_id", string(appID)), zap.String("key", key))
	return nil
}

func (s *SecretService) requireApp(ctx context.Context, appID domain.AppID) error {
	if !s.units.Exists(ctx, appID) {
		return fmt.Errorf("%w: %s", domain.ErrAppNotFound, appID)
	}

	return nil
}

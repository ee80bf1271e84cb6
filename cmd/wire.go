package cmd

import (
	"fmt"
	"time"

	appsview "github.com/bnema/dsec/internal/adapters/render/apps"
	"github.com/bnema/dsec/internal/adapters/storage/sqlite"
	"github.com/bnema/dsec/internal/application"
	"github.com/bnema/dsec/internal/config"
	"github.com/bnema/dsec/internal/domain"
	"github.com/bnema/dsec/internal/logging"
	"github.com/bnema/dsec/internal/metrics"
	"github.com/bnema/dsec/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	apps           *application.AppService
	secrets        *application.SecretService
	transfer       *application.TransferService
	appsRenderer   func([]domain.AppSummary, appsview.RenderOptions) (string, error)
	secretRenderer func(domain.App, []domain.Secret, appsview.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	metrics.Enabled = cfg.Metrics.Enabled

	units := sqlite.NewUnits(cfg.Storage.Root, logger.Named("storage"))
	registry := sqlite.NewRegistry(cfg.Storage.Root, units, logger.Named("registry"))
	clock := ports.SystemClock{}

	return &app{
		cfg:            cfg,
		logger:         logger,
		apps:           application.NewAppService(units, registry, clock, logger.Named("apps")),
		secrets:        application.NewSecretService(units, clock, logger.Named("secrets")),
		transfer:       application.NewTransferService(units, registry, clock, logger.Named("transfer")),
		appsRenderer:   appsview.RenderApps,
		secretRenderer: appsview.RenderSecrets,
		now:            time.Now,
	}, nil
}

package ports

import (
	"context"

	"github.com/bnema/dsec/internal/domain"
)

type TenantRegistry interface {
	ListAll(ctx context.Context) ([]domain.App, error)
}

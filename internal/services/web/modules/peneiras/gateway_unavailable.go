package peneiras

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListPeneiras(context.Context) ([]golearapi.Peneira, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) CreatePeneira(context.Context, golearapi.NewPeneira) (int64, error) {
	return 0, errUnavailable()
}

func (unavailableGateway) EnrollPeneira(context.Context, int64) error {
	return errUnavailable()
}

func (unavailableGateway) UnenrollPeneira(context.Context, int64) error {
	return errUnavailable()
}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "peneiras service is not configured")
}

package public

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/storage"
)

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, string, string) (golearapi.LoginResult, error) {
	return golearapi.LoginResult{}, apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) Register(context.Context, golearapi.RegisterInput) (golearapi.LoginResult, error) {
	return golearapi.LoginResult{}, apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) RequestPasswordReset(context.Context, string) error {
	return apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) ResetPassword(context.Context, string, string, string) error {
	return apperrors.E(apperrors.KindUnavailable, "auth service is not configured")
}

func (unavailableGateway) ListPeneiras(context.Context) ([]golearapi.Peneira, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "peneira service is not configured")
}

type unavailableSessions struct{}

func (unavailableSessions) Start(context.Context, string, bool) (storage.Session, error) {
	return storage.Session{}, apperrors.E(apperrors.KindUnavailable, "session store is not configured")
}

func (unavailableSessions) End(context.Context, string) error {
	return apperrors.E(apperrors.KindUnavailable, "session store is not configured")
}

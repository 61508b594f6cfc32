package users

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// UserClient is the subset of the API client the user pages need.
type UserClient interface {
	GetProfileByID(ctx context.Context, userID int64) (golearapi.Profile, error)
	ConnectionStatus(ctx context.Context, userID int64) (bool, error)
	Connect(ctx context.Context, userID int64) error
	Disconnect(ctx context.Context, userID int64) error
	Followers(ctx context.Context, userID int64) (golearapi.Connections, error)
	Following(ctx context.Context, userID int64) (golearapi.Connections, error)
}

// NewAPIGateway returns the users gateway backed by the API client.
func NewAPIGateway(client UserClient) UserGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}

type unavailableGateway struct{}

func (unavailableGateway) GetProfileByID(context.Context, int64) (golearapi.Profile, error) {
	return golearapi.Profile{}, errUnavailable()
}

func (unavailableGateway) ConnectionStatus(context.Context, int64) (bool, error) {
	return false, errUnavailable()
}

func (unavailableGateway) Connect(context.Context, int64) error {
	return errUnavailable()
}

func (unavailableGateway) Disconnect(context.Context, int64) error {
	return errUnavailable()
}

func (unavailableGateway) Followers(context.Context, int64) (golearapi.Connections, error) {
	return golearapi.Connections{}, errUnavailable()
}

func (unavailableGateway) Following(context.Context, int64) (golearapi.Connections, error) {
	return golearapi.Connections{}, errUnavailable()
}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "users service is not configured")
}

package profile

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// ProfileClient is the subset of the API client the own-profile pages need.
type ProfileClient interface {
	GetProfile(ctx context.Context) (golearapi.Profile, error)
	UpdateProfile(ctx context.Context, in golearapi.ProfileUpdate) error
	UploadProfilePicture(ctx context.Context, picture golearapi.Upload) error
	Followers(ctx context.Context, userID int64) (golearapi.Connections, error)
	Following(ctx context.Context, userID int64) (golearapi.Connections, error)
}

// NewAPIGateway returns the profile gateway backed by the API client.
func NewAPIGateway(client ProfileClient) ProfileGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}

type unavailableGateway struct{}

func (unavailableGateway) GetProfile(context.Context) (golearapi.Profile, error) {
	return golearapi.Profile{}, errUnavailable()
}

func (unavailableGateway) UpdateProfile(context.Context, golearapi.ProfileUpdate) error {
	return errUnavailable()
}

func (unavailableGateway) UploadProfilePicture(context.Context, golearapi.Upload) error {
	return errUnavailable()
}

func (unavailableGateway) Followers(context.Context, int64) (golearapi.Connections, error) {
	return golearapi.Connections{}, errUnavailable()
}

func (unavailableGateway) Following(context.Context, int64) (golearapi.Connections, error) {
	return golearapi.Connections{}, errUnavailable()
}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "profile service is not configured")
}

package users

import (
	"context"
	"strconv"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/profileview"
)

// UserGateway abstracts the foreign-profile and connection endpoints.
type UserGateway interface {
	GetProfileByID(ctx context.Context, userID int64) (golearapi.Profile, error)
	ConnectionStatus(ctx context.Context, userID int64) (bool, error)
	Connect(ctx context.Context, userID int64) error
	Disconnect(ctx context.Context, userID int64) error
	Followers(ctx context.Context, userID int64) (golearapi.Connections, error)
	Following(ctx context.Context, userID int64) (golearapi.Connections, error)
}

// userPage is everything the foreign profile page shows.
type userPage struct {
	Profile   golearapi.Profile
	Counts    profileview.Counts
	Connected bool
}

type service struct {
	gateway UserGateway
}

func newService(gateway UserGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) load(ctx context.Context, viewerID string, targetID int64) (userPage, error) {
	if err := requireUserID(viewerID); err != nil {
		return userPage{}, err
	}
	p, err := s.gateway.GetProfileByID(ctx, targetID)
	if err != nil {
		return userPage{}, err
	}
	page := userPage{Profile: p}
	if page.Profile.ID == 0 {
		page.Profile.ID = targetID
	}
	// Follow state and totals decorate the page; only an expired token
	// aborts it.
	connected, err := s.gateway.ConnectionStatus(ctx, targetID)
	if golearapi.IsUnauthorized(err) {
		return userPage{}, err
	}
	page.Connected = err == nil && connected
	if followers, err := s.gateway.Followers(ctx, targetID); err == nil {
		page.Counts.Followers = followers.Total
	}
	if following, err := s.gateway.Following(ctx, targetID); err == nil {
		page.Counts.Following = following.Total
	}
	return page, nil
}

func (s service) connect(ctx context.Context, viewerID string, targetID int64) error {
	if err := s.guardTarget(viewerID, targetID); err != nil {
		return err
	}
	return s.gateway.Connect(ctx, targetID)
}

func (s service) disconnect(ctx context.Context, viewerID string, targetID int64) error {
	if err := s.guardTarget(viewerID, targetID); err != nil {
		return err
	}
	return s.gateway.Disconnect(ctx, targetID)
}

func (s service) guardTarget(viewerID string, targetID int64) error {
	if err := requireUserID(viewerID); err != nil {
		return err
	}
	if isSelf(viewerID, targetID) {
		return apperrors.EK(apperrors.KindInvalidInput, "web.users.error_self_connect", "cannot follow yourself")
	}
	return nil
}

func isSelf(viewerID string, targetID int64) bool {
	return strings.TrimSpace(viewerID) == strconv.FormatInt(targetID, 10)
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.EK(apperrors.KindUnauthorized, "error.web.message.user_id_is_required", "user id is required")
	}
	return nil
}

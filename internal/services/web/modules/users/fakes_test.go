package users

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
)

type fakeGateway struct {
	profile      golearapi.Profile
	profileErr   error
	connected    bool
	statusErr    error
	connectErr   error
	followers    golearapi.Connections
	followersErr error
	following    golearapi.Connections
	calls        *gatewayCalls
}

type gatewayCalls struct {
	connected    int64
	disconnected int64
}

var _ UserGateway = fakeGateway{}

func (f fakeGateway) GetProfileByID(_ context.Context, userID int64) (golearapi.Profile, error) {
	if f.profileErr != nil {
		return golearapi.Profile{}, f.profileErr
	}
	p := f.profile
	if p.ID == 0 {
		p.ID = userID
	}
	return p, nil
}

func (f fakeGateway) ConnectionStatus(context.Context, int64) (bool, error) {
	return f.connected, f.statusErr
}

func (f fakeGateway) Connect(_ context.Context, userID int64) error {
	if f.calls != nil {
		f.calls.connected = userID
	}
	return f.connectErr
}

func (f fakeGateway) Disconnect(_ context.Context, userID int64) error {
	if f.calls != nil {
		f.calls.disconnected = userID
	}
	return f.connectErr
}

func (f fakeGateway) Followers(context.Context, int64) (golearapi.Connections, error) {
	if f.followersErr != nil {
		return golearapi.Connections{}, f.followersErr
	}
	return f.followers, nil
}

func (f fakeGateway) Following(context.Context, int64) (golearapi.Connections, error) {
	return f.following, nil
}

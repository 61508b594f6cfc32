package profile

import (
	"context"
	"io"

	"github.com/golear/golear/internal/services/golearapi"
)

type fakeGateway struct {
	profile      golearapi.Profile
	profileErr   error
	updateErr    error
	uploadErr    error
	followers    golearapi.Connections
	followersErr error
	following    golearapi.Connections
	calls        *gatewayCalls
}

type gatewayCalls struct {
	update       *golearapi.ProfileUpdate
	uploadedType string
	uploadedData string
}

var _ ProfileGateway = fakeGateway{}

func (f fakeGateway) GetProfile(context.Context) (golearapi.Profile, error) {
	if f.profileErr != nil {
		return golearapi.Profile{}, f.profileErr
	}
	return f.profile, nil
}

func (f fakeGateway) UpdateProfile(_ context.Context, in golearapi.ProfileUpdate) error {
	if f.calls != nil {
		f.calls.update = &in
	}
	return f.updateErr
}

func (f fakeGateway) UploadProfilePicture(_ context.Context, picture golearapi.Upload) error {
	if f.calls != nil {
		f.calls.uploadedType = picture.ContentType
		if picture.Data != nil {
			data, _ := io.ReadAll(picture.Data)
			f.calls.uploadedData = string(data)
		}
	}
	return f.uploadErr
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

package public

import (
	"context"
	"time"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/storage"
)

// fakeGateway implements AuthGateway with configurable returns and error
// injection. Calls are recorded on the shared calls pointer when set.
type fakeGateway struct {
	loginResult    golearapi.LoginResult
	loginErr       error
	registerResult golearapi.LoginResult
	registerErr    error
	resetErr       error
	changeErr      error
	peneiras       []golearapi.Peneira
	peneirasErr    error
	calls          *gatewayCalls
}

type gatewayCalls struct {
	loginEmail    string
	registered    golearapi.RegisterInput
	resetEmail    string
	changedEmail  string
	changedToken  string
	changedSecret string
}

var _ AuthGateway = fakeGateway{}

func (f fakeGateway) Login(_ context.Context, email, _ string) (golearapi.LoginResult, error) {
	if f.calls != nil {
		f.calls.loginEmail = email
	}
	if f.loginErr != nil {
		return golearapi.LoginResult{}, f.loginErr
	}
	return f.loginResult, nil
}

func (f fakeGateway) Register(_ context.Context, in golearapi.RegisterInput) (golearapi.LoginResult, error) {
	if f.calls != nil {
		f.calls.registered = in
	}
	if f.registerErr != nil {
		return golearapi.LoginResult{}, f.registerErr
	}
	return f.registerResult, nil
}

func (f fakeGateway) RequestPasswordReset(_ context.Context, email string) error {
	if f.calls != nil {
		f.calls.resetEmail = email
	}
	return f.resetErr
}

func (f fakeGateway) ResetPassword(_ context.Context, email, newPassword, token string) error {
	if f.calls != nil {
		f.calls.changedEmail = email
		f.calls.changedSecret = newPassword
		f.calls.changedToken = token
	}
	return f.changeErr
}

func (f fakeGateway) ListPeneiras(context.Context) ([]golearapi.Peneira, error) {
	if f.peneirasErr != nil {
		return nil, f.peneirasErr
	}
	return f.peneiras, nil
}

// fakeSessions implements SessionStarter.
type fakeSessions struct {
	startErr error
	started  *storage.Session
	ended    *string
}

var _ SessionStarter = fakeSessions{}

func (f fakeSessions) Start(_ context.Context, token string, remember bool) (storage.Session, error) {
	if f.startErr != nil {
		return storage.Session{}, f.startErr
	}
	s := storage.Session{
		ID:        "sess-1",
		Token:     token,
		UserID:    "7",
		Name:      "Ana",
		Role:      string(golearapi.RoleJogador),
		Remember:  remember,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
	}
	if f.started != nil {
		*f.started = s
	}
	return s, nil
}

func (f fakeSessions) End(_ context.Context, id string) error {
	if f.ended != nil {
		*f.ended = id
	}
	return nil
}

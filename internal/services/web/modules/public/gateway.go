package public

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
)

// AuthClient is the slice of the REST client the public module calls.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (golearapi.LoginResult, error)
	Register(ctx context.Context, in golearapi.RegisterInput) (golearapi.LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ChangePassword(ctx context.Context, email, novaSenha, token string) (string, error)
	ListPeneiras(ctx context.Context) ([]golearapi.Peneira, error)
}

// NewAPIGateway maps the REST client into the public gateway contract.
func NewAPIGateway(client AuthClient) AuthGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client AuthClient
}

func (g apiGateway) Login(ctx context.Context, email, password string) (golearapi.LoginResult, error) {
	return g.client.Login(ctx, email, password)
}

func (g apiGateway) Register(ctx context.Context, in golearapi.RegisterInput) (golearapi.LoginResult, error) {
	return g.client.Register(ctx, in)
}

func (g apiGateway) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := g.client.RequestPasswordReset(ctx, email)
	return err
}

func (g apiGateway) ResetPassword(ctx context.Context, email, newPassword, token string) error {
	_, err := g.client.ChangePassword(ctx, email, newPassword, token)
	return err
}

func (g apiGateway) ListPeneiras(ctx context.Context) ([]golearapi.Peneira, error) {
	return g.client.ListPeneiras(ctx)
}

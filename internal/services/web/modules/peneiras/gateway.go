package peneiras

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
)

// PeneiraClient is the subset of the API client the tryout pages need.
type PeneiraClient interface {
	ListPeneiras(ctx context.Context) ([]golearapi.Peneira, error)
	CreatePeneira(ctx context.Context, in golearapi.NewPeneira) (int64, error)
	EnrollPeneira(ctx context.Context, peneiraID int64) error
	UnenrollPeneira(ctx context.Context, peneiraID int64) error
}

// NewAPIGateway returns the peneiras gateway backed by the API client.
func NewAPIGateway(client PeneiraClient) PeneiraGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}

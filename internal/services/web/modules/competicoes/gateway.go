package competicoes

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// CompeticaoClient is the subset of the API client the competition pages need.
type CompeticaoClient interface {
	ListCompeticoes(ctx context.Context) ([]golearapi.Competicao, error)
	CreateCompeticao(ctx context.Context, in golearapi.Competicao) (golearapi.Competicao, error)
}

// NewAPIGateway returns the competicoes gateway backed by the API client.
func NewAPIGateway(client CompeticaoClient) CompeticaoGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}

type unavailableGateway struct{}

func (unavailableGateway) ListCompeticoes(context.Context) ([]golearapi.Competicao, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "competicoes service is not configured")
}

func (unavailableGateway) CreateCompeticao(context.Context, golearapi.Competicao) (golearapi.Competicao, error) {
	return golearapi.Competicao{}, apperrors.E(apperrors.KindUnavailable, "competicoes service is not configured")
}

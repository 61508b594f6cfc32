package search

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// SearchClient is the subset of the API client the search page needs.
type SearchClient interface {
	SearchUsers(ctx context.Context, filters golearapi.SearchFilters) ([]golearapi.Profile, error)
	Recommendations(ctx context.Context) ([]golearapi.Recommendation, error)
}

// NewAPIGateway returns the search gateway backed by the API client.
func NewAPIGateway(client SearchClient) SearchGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}

type unavailableGateway struct{}

func (unavailableGateway) SearchUsers(context.Context, golearapi.SearchFilters) ([]golearapi.Profile, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "search service is not configured")
}

func (unavailableGateway) Recommendations(context.Context) ([]golearapi.Recommendation, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "search service is not configured")
}

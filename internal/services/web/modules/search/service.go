package search

import (
	"context"
	"strconv"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// SearchGateway abstracts the user search and recommendation endpoints.
type SearchGateway interface {
	SearchUsers(ctx context.Context, filters golearapi.SearchFilters) ([]golearapi.Profile, error)
	Recommendations(ctx context.Context) ([]golearapi.Recommendation, error)
}

// outcome is one search page worth of data. Failed is set when the backend
// could not answer; the page still renders with empty lists.
type outcome struct {
	Filters         golearapi.SearchFilters
	Searched        bool
	Results         []golearapi.Profile
	Recommendations []golearapi.Recommendation
	Failed          bool
}

type service struct {
	gateway SearchGateway
}

func newService(gateway SearchGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// run searches when any filter is set and lists recommendations otherwise.
// Only an expired token is returned as an error.
func (s service) run(ctx context.Context, viewerID string, filters golearapi.SearchFilters) (outcome, error) {
	if strings.TrimSpace(viewerID) == "" {
		return outcome{}, apperrors.EK(apperrors.KindUnauthorized, "error.web.message.user_id_is_required", "user id is required")
	}
	out := outcome{Filters: filters, Searched: !filters.Empty()}
	if out.Searched {
		results, err := s.gateway.SearchUsers(ctx, filters)
		if err != nil {
			return s.failed(out, err)
		}
		for _, p := range results {
			if !isViewer(viewerID, p.ID) {
				out.Results = append(out.Results, p)
			}
		}
		return out, nil
	}
	recs, err := s.gateway.Recommendations(ctx)
	if err != nil {
		return s.failed(out, err)
	}
	for _, rec := range recs {
		if !isViewer(viewerID, rec.ID) {
			out.Recommendations = append(out.Recommendations, rec)
		}
	}
	return out, nil
}

func (service) failed(out outcome, err error) (outcome, error) {
	if golearapi.IsUnauthorized(err) {
		return outcome{}, err
	}
	out.Failed = true
	return out, nil
}

func isViewer(viewerID string, id int64) bool {
	return strings.TrimSpace(viewerID) == strconv.FormatInt(id, 10)
}

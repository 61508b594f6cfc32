package feed

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Feed(context.Context) ([]golearapi.Post, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) CreatePost(context.Context, golearapi.NewPost) (golearapi.Post, error) {
	return golearapi.Post{}, errUnavailable()
}

func (unavailableGateway) LikePost(context.Context, int64) error {
	return errUnavailable()
}

func (unavailableGateway) DeletePost(context.Context, int64) error {
	return errUnavailable()
}

func (unavailableGateway) ListComments(context.Context, int64) ([]golearapi.Comment, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) AddComment(context.Context, int64, string) (golearapi.Comment, error) {
	return golearapi.Comment{}, errUnavailable()
}

func (unavailableGateway) DeleteComment(context.Context, int64, int64) error {
	return errUnavailable()
}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "feed service is not configured")
}

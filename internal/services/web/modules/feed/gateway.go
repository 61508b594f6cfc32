package feed

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
)

// PostClient is the subset of the API client the feed needs.
type PostClient interface {
	Feed(ctx context.Context) ([]golearapi.Post, error)
	CreatePost(ctx context.Context, in golearapi.NewPost) (golearapi.Post, error)
	LikePost(ctx context.Context, postID int64) error
	DeletePost(ctx context.Context, postID int64) error
	ListComments(ctx context.Context, postID int64) ([]golearapi.Comment, error)
	AddComment(ctx context.Context, postID int64, texto string) (golearapi.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error
}

// NewAPIGateway returns the feed gateway backed by the API client. A nil
// client yields the unavailable gateway.
func NewAPIGateway(client PostClient) FeedGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return client
}

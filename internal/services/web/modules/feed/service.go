package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/news"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
)

// maxMediaBytes bounds post media uploads.
const maxMediaBytes = 10 << 20

// FeedGateway abstracts the post endpoints behind domain types.
type FeedGateway interface {
	Feed(ctx context.Context) ([]golearapi.Post, error)
	CreatePost(ctx context.Context, in golearapi.NewPost) (golearapi.Post, error)
	LikePost(ctx context.Context, postID int64) error
	DeletePost(ctx context.Context, postID int64) error
	ListComments(ctx context.Context, postID int64) ([]golearapi.Comment, error)
	AddComment(ctx context.Context, postID int64, texto string) (golearapi.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error
}

// NewsSource returns the current headlines. It never fails; an outage
// yields an empty list.
type NewsSource interface {
	Latest(ctx context.Context) []news.Item
}

type postInput struct {
	Titulo   string
	Conteudo string
	Media    *golearapi.Upload
}

// fieldErrors maps form field names to catalog keys.
type fieldErrors map[string]string

func (f fieldErrors) Error() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

type service struct {
	gateway FeedGateway
	news    NewsSource
}

func newService(gateway FeedGateway, source NewsSource) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if source == nil {
		source = noNews{}
	}
	return service{gateway: gateway, news: source}
}

func (s service) listPosts(ctx context.Context, userID string) ([]golearapi.Post, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.gateway.Feed(ctx)
}

func (s service) latestNews(ctx context.Context) []news.Item {
	return s.news.Latest(ctx)
}

func (s service) createPost(ctx context.Context, userID string, in postInput) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	errs := fieldErrors{}
	if strings.TrimSpace(in.Titulo) == "" {
		errs["titulo"] = "web.feed.error_title_required"
	}
	if strings.TrimSpace(in.Conteudo) == "" {
		errs["conteudo"] = "web.feed.error_content_required"
	}
	if in.Media != nil && !acceptedMediaType(in.Media.ContentType) {
		errs["image"] = "web.feed.error_media_type"
	}
	if len(errs) > 0 {
		return errs
	}
	_, err := s.gateway.CreatePost(ctx, golearapi.NewPost{
		Titulo:   strings.TrimSpace(in.Titulo),
		Conteudo: strings.TrimSpace(in.Conteudo),
		Image:    in.Media,
	})
	return err
}

// likePost likes postID and returns the refreshed post.
func (s service) likePost(ctx context.Context, userID string, postID int64) (golearapi.Post, error) {
	if err := requireUserID(userID); err != nil {
		return golearapi.Post{}, err
	}
	if err := s.gateway.LikePost(ctx, postID); err != nil {
		return golearapi.Post{}, err
	}
	posts, err := s.gateway.Feed(ctx)
	if err != nil {
		return golearapi.Post{}, err
	}
	for _, post := range posts {
		if post.ID == postID {
			return post, nil
		}
	}
	return golearapi.Post{}, apperrors.E(apperrors.KindNotFound, fmt.Sprintf("post %d not in feed", postID))
}

func (s service) deletePost(ctx context.Context, userID string, postID int64) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.gateway.DeletePost(ctx, postID)
}

func (s service) listComments(ctx context.Context, userID string, postID int64) ([]golearapi.Comment, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.gateway.ListComments(ctx, postID)
}

func (s service) addComment(ctx context.Context, userID string, postID int64, texto string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "web.feed.error_comment_required", "comment text is required")
	}
	_, err := s.gateway.AddComment(ctx, postID, texto)
	return err
}

func (s service) deleteComment(ctx context.Context, userID string, postID, commentID int64) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.gateway.DeleteComment(ctx, postID, commentID)
}

func acceptedMediaType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}

// requireUserID guards feed operations that need an authenticated user.
func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.EK(apperrors.KindUnauthorized, "error.web.message.user_id_is_required", "user id is required")
	}
	return nil
}

type noNews struct{}

func (noNews) Latest(context.Context) []news.Item { return nil }

package feed

import (
	"context"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/news"
)

// fakeGateway implements FeedGateway with configurable returns and error
// injection. Calls are recorded on the shared calls pointer when set.
type fakeGateway struct {
	posts     []golearapi.Post
	feedErr   error
	createErr error
	likeErr   error
	deleteErr error
	comments  []golearapi.Comment
	listErr   error
	addErr    error
	removeErr error
	calls     *gatewayCalls
}

type gatewayCalls struct {
	created        golearapi.NewPost
	createdMedia   string
	liked          int64
	commentedPost  int64
	commentText    string
	removedComment int64
	feedRequests   int
}

var _ FeedGateway = fakeGateway{}

func (f fakeGateway) Feed(context.Context) ([]golearapi.Post, error) {
	if f.calls != nil {
		f.calls.feedRequests++
	}
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.posts, nil
}

func (f fakeGateway) CreatePost(_ context.Context, in golearapi.NewPost) (golearapi.Post, error) {
	if f.calls != nil {
		f.calls.created = in
		if in.Image != nil {
			f.calls.createdMedia = in.Image.ContentType
		}
	}
	if f.createErr != nil {
		return golearapi.Post{}, f.createErr
	}
	return golearapi.Post{ID: 99, Titulo: in.Titulo, Conteudo: in.Conteudo}, nil
}

func (f fakeGateway) LikePost(_ context.Context, postID int64) error {
	if f.calls != nil {
		f.calls.liked = postID
	}
	return f.likeErr
}

func (f fakeGateway) DeletePost(context.Context, int64) error {
	return f.deleteErr
}

func (f fakeGateway) ListComments(context.Context, int64) ([]golearapi.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.comments, nil
}

func (f fakeGateway) AddComment(_ context.Context, postID int64, texto string) (golearapi.Comment, error) {
	if f.calls != nil {
		f.calls.commentedPost = postID
		f.calls.commentText = texto
	}
	if f.addErr != nil {
		return golearapi.Comment{}, f.addErr
	}
	return golearapi.Comment{ID: 1, Texto: texto}, nil
}

func (f fakeGateway) DeleteComment(_ context.Context, _ int64, commentID int64) error {
	if f.calls != nil {
		f.calls.removedComment = commentID
	}
	return f.removeErr
}

type fakeNews []news.Item

func (f fakeNews) Latest(context.Context) []news.Item { return f }

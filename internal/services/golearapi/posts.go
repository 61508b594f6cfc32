package golearapi

import (
	"context"
	"net/http"
)

// Feed returns the posts visible to the signed-in user.
func (c *Client) Feed(ctx context.Context) ([]Post, error) {
	var out struct {
		Posts []Post `json:"posts"`
	}
	if err := c.do(ctx, call{op: "Feed", method: http.MethodGet, path: "/feed/api", auth: true}, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// CreatePost publishes a post with an optional image.
func (c *Client) CreatePost(ctx context.Context, in NewPost) (Post, error) {
	form := (&multipartBody{}).
		field("titulo", in.Titulo).
		field("conteudo", in.Conteudo).
		file("image", in.Image)
	var out struct {
		Post Post `json:"post"`
	}
	if err := c.do(ctx, call{op: "CreatePost", method: http.MethodPost, path: "/posts", form: form, auth: true}, &out); err != nil {
		return Post{}, err
	}
	return out.Post, nil
}

// LikePost likes a post. The backend has no unlike endpoint.
func (c *Client) LikePost(ctx context.Context, postID int64) error {
	return c.do(ctx, call{op: "LikePost", method: http.MethodPost, path: idPath("/posts/%s/like", postID), auth: true}, nil)
}

// DeletePost always fails: the backend does not document post deletion.
func (c *Client) DeletePost(context.Context, int64) error {
	return notSupported("DeletePost")
}

// ListComments returns the comments under a post.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	var out struct {
		Comentarios []Comment `json:"comentarios"`
	}
	if err := c.do(ctx, call{op: "ListComments", method: http.MethodGet, path: idPath("/posts/%s/comentarios", postID), auth: true}, &out); err != nil {
		return nil, err
	}
	return out.Comentarios, nil
}

// AddComment posts a reply and returns it as stored.
func (c *Client) AddComment(ctx context.Context, postID int64, texto string) (Comment, error) {
	var out struct {
		Comentario Comment `json:"comentario"`
	}
	err := c.do(ctx, call{
		op:     "AddComment",
		method: http.MethodPost,
		path:   idPath("/posts/%s/comentarios", postID),
		json:   map[string]string{"texto": texto},
		auth:   true,
	}, &out)
	if err != nil {
		return Comment{}, err
	}
	return out.Comentario, nil
}

// DeleteComment removes one of the caller's comments.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID int64) error {
	return c.do(ctx, call{
		op:     "DeleteComment",
		method: http.MethodDelete,
		path:   idPath("/posts/%s/comentarios/%s", postID, commentID),
		auth:   true,
	}, nil)
}

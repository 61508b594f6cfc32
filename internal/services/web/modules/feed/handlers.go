package feed

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/platform/flash"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/platform/weberror"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeFeed(w, r, http.StatusOK, webtemplates.FeedView{})
}

func (h handlers) writeFeed(w http.ResponseWriter, r *http.Request, status int, view webtemplates.FeedView) {
	ctx, userID := h.RequestContextAndUserID(r)
	loc, lang := h.PageLocalizer(w, r)
	posts, err := h.service.listPosts(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view.Posts = postCards(posts, userID, lang, loc)
	view.News = newsCards(h.service.latestNews(ctx), lang)
	h.WritePage(w, r, webtemplates.T(loc, "web.feed.title"), status, &webtemplates.AppMainHeader{Title: webtemplates.T(loc, "web.feed.title")}, webtemplates.FeedFragment(view, loc))
}

func (h handlers) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	r.Body = http.MaxBytesReader(w, r.Body, maxMediaBytes+(1<<20))
	if err := r.ParseMultipartForm(maxMediaBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeFeed(w, r, http.StatusRequestEntityTooLarge, webtemplates.FeedView{FormErrors: h.localized(w, r, fieldErrors{"image": "web.feed.error_media_too_large"})})
			return
		}
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse post form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	in := postInput{
		Titulo:   strings.TrimSpace(r.PostFormValue("titulo")),
		Conteudo: strings.TrimSpace(r.PostFormValue("conteudo")),
	}
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		in.Media = &golearapi.Upload{Filename: header.Filename, ContentType: header.Header.Get("Content-Type"), Data: file}
	case !errors.Is(err, http.ErrMissingFile):
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", fmt.Sprintf("read post media: %v", err)))
		return
	}

	if err := h.service.createPost(ctx, userID, in); err != nil {
		var errs fieldErrors
		view := webtemplates.FeedView{Form: webtemplates.PostForm{Titulo: in.Titulo, Conteudo: in.Conteudo}}
		switch {
		case errors.As(err, &errs):
			view.FormErrors = h.localized(w, r, errs)
			h.writeFeed(w, r, http.StatusUnprocessableEntity, view)
		case golearapi.IsUnauthorized(err) || apperrors.HTTPStatus(err) >= http.StatusInternalServerError:
			h.WriteError(w, r, err)
		default:
			loc, _ := h.PageLocalizer(w, r)
			view.Error = weberror.PublicMessage(loc, err)
			h.writeFeed(w, r, apperrors.HTTPStatus(err), view)
		}
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.feed.notice_published"))
	httpx.WriteRedirect(w, r, routepath.AppFeed)
}

func (h handlers) handleNews(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.NewsSidebar(newsCards(h.service.latestNews(r.Context()), lang), loc))
}

func (h handlers) handleLikeRoute(w http.ResponseWriter, r *http.Request) {
	postID, ok := routepath.ParseID(r.PathValue("postID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	post, err := h.service.likePost(ctx, userID, postID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.AppFeed)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.PostCardFragment(postCard(post, userID, lang, loc), loc))
}

func (h handlers) handleDeletePostRoute(w http.ResponseWriter, r *http.Request) {
	postID, ok := routepath.ParseID(r.PathValue("postID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	if err := h.service.deletePost(ctx, userID, postID); err != nil {
		if apperrors.KindOf(err) != apperrors.KindNotSupported && !golearapi.IsNotSupported(err) {
			h.WriteError(w, r, err)
			return
		}
		flash.Write(w, r, flash.NoticeError("web.feed.error_delete_unsupported"))
		httpx.WriteRedirect(w, r, routepath.AppFeed)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.feed.notice_deleted"))
	httpx.WriteRedirect(w, r, routepath.AppFeed)
}

func (h handlers) handleCommentsRoute(w http.ResponseWriter, r *http.Request) {
	postID, ok := routepath.ParseID(r.PathValue("postID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	h.writeComments(w, r, http.StatusOK, postID, webtemplates.CommentsView{})
}

func (h handlers) handleAddCommentRoute(w http.ResponseWriter, r *http.Request) {
	postID, ok := routepath.ParseID(r.PathValue("postID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse comment form"))
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	texto := r.PostFormValue("texto")
	if err := h.service.addComment(ctx, userID, postID, texto); err != nil {
		if golearapi.IsUnauthorized(err) || apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
			h.WriteError(w, r, err)
			return
		}
		loc, _ := h.PageLocalizer(w, r)
		h.writeComments(w, r, apperrors.HTTPStatus(err), postID, webtemplates.CommentsView{Draft: texto, Error: weberror.PublicMessage(loc, err)})
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.AppPostComments(postID))
		return
	}
	h.writeComments(w, r, http.StatusOK, postID, webtemplates.CommentsView{})
}

func (h handlers) handleDeleteCommentRoute(w http.ResponseWriter, r *http.Request) {
	postID, ok := routepath.ParseID(r.PathValue("postID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	commentID, ok := routepath.ParseID(r.PathValue("commentID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	if err := h.service.deleteComment(ctx, userID, postID, commentID); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.AppPostComments(postID))
		return
	}
	h.writeComments(w, r, http.StatusOK, postID, webtemplates.CommentsView{})
}

// writeComments renders the thread as a fragment for HTMX swaps and as a
// full page otherwise.
func (h handlers) writeComments(w http.ResponseWriter, r *http.Request, status int, postID int64, view webtemplates.CommentsView) {
	ctx, userID := h.RequestContextAndUserID(r)
	comments, err := h.service.listComments(ctx, userID, postID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	view.PostID = postID
	view.AddURL = routepath.AppPostComments(postID)
	view.Comments = commentItems(comments, postID, userID, lang, loc)
	fragment := webtemplates.CommentsFragment(view, loc)
	if httpx.IsHTMXRequest(r) {
		h.WriteFragment(w, r, status, fragment)
		return
	}
	title := webtemplates.T(loc, "web.feed.comments_title")
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title}, fragment)
}

func (h handlers) localized(w http.ResponseWriter, r *http.Request, errs fieldErrors) map[string]string {
	loc, _ := h.PageLocalizer(w, r)
	out := make(map[string]string, len(errs))
	for name, key := range errs {
		out[name] = webtemplates.T(loc, key)
	}
	return out
}

package feed

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppFeed, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeedPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppFeedPosts, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppFeedPosts, h.handleCreatePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppFeedNews, h.handleNews)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPostLikePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPostLikePattern, h.handleLikeRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPostDeletePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPostDeletePattern, h.handleDeletePostRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPostCommentsPattern, h.handleCommentsRoute)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPostCommentsPattern, h.handleAddCommentRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCommentDeletePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCommentDeletePattern, h.handleDeleteCommentRoute)
	mux.HandleFunc(routepath.FeedPrefix, h.WriteNotFound)
}

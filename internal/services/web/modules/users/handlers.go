package users

import (
	"context"
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/flash"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/profileview"
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

// handleDirectory sends the bare users path to search, where people are found.
func (h handlers) handleDirectory(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.AppSearch)
}

func (h handlers) handleProfileRoute(w http.ResponseWriter, r *http.Request) {
	targetID, ok := routepath.ParseID(r.PathValue("userID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	ctx, viewerID := h.RequestContextAndUserID(r)
	if isSelf(viewerID, targetID) {
		httpx.WriteRedirect(w, r, routepath.AppProfile)
		return
	}
	page, err := h.service.load(ctx, viewerID, targetID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := profileview.Build(page.Profile, page.Counts, false, loc)
	view.Connection = &webtemplates.ConnectionAction{
		Connected:     page.Connected,
		ConnectURL:    routepath.AppUserConnect(targetID),
		DisconnectURL: routepath.AppUserDisconnect(targetID),
	}
	h.WritePage(w, r, view.Name, http.StatusOK, &webtemplates.AppMainHeader{Title: view.Name, Subtitle: view.Role}, webtemplates.ProfileFragment(view, loc))
}

func (h handlers) handleConnectRoute(w http.ResponseWriter, r *http.Request) {
	h.handleConnection(w, r, h.service.connect, "web.users.notice_connected")
}

func (h handlers) handleDisconnectRoute(w http.ResponseWriter, r *http.Request) {
	h.handleConnection(w, r, h.service.disconnect, "web.users.notice_disconnected")
}

func (h handlers) handleConnection(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, viewerID string, targetID int64) error, noticeKey string) {
	targetID, ok := routepath.ParseID(r.PathValue("userID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	ctx, viewerID := h.RequestContextAndUserID(r)
	if err := action(ctx, viewerID, targetID); err != nil {
		h.WriteError(w, r, err)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess(noticeKey))
	httpx.WriteRedirect(w, r, routepath.AppUser(targetID))
}

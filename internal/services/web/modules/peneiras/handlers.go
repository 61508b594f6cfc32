package peneiras

import (
	"context"
	"errors"
	"net/http"

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
	h.writeList(w, r, http.StatusOK, webtemplates.PeneirasView{})
}

func (h handlers) writeList(w http.ResponseWriter, r *http.Request, status int, view webtemplates.PeneirasView) {
	ctx, userID := h.RequestContextAndUserID(r)
	items, err := h.service.list(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	viewer := h.ResolveRequestViewer(r)
	view.CanCreate = viewer.Is(golearapi.RoleOlheiro)
	view.CanEnroll = viewer.Is(golearapi.RoleJogador)
	view.Items = peneiraCards(items, lang)
	title := webtemplates.T(loc, "web.peneiras.title")
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title, Subtitle: webtemplates.T(loc, "web.peneiras.subtitle")}, webtemplates.PeneirasFragment(view, loc))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse peneira form"))
		return
	}
	in := golearapi.NewPeneira{
		Titulo:     r.PostFormValue("titulo"),
		Descricao:  r.PostFormValue("descricao"),
		Local:      r.PostFormValue("local"),
		DataEvento: r.PostFormValue("data_evento"),
		Estado:     r.PostFormValue("estado"),
		Idade:      r.PostFormValue("idade"),
		Posicao:    r.PostFormValue("posicao"),
		Detalhes:   r.PostFormValue("detalhes"),
		Objetivo:   r.PostFormValue("objetivo"),
	}
	ctx, userID := h.RequestContextAndUserID(r)
	viewer := h.ResolveRequestViewer(r)
	if _, err := h.service.create(ctx, userID, viewer.Role, in); err != nil {
		if golearapi.IsUnauthorized(err) || apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
			h.WriteError(w, r, err)
			return
		}
		view := webtemplates.PeneirasView{Form: formValues(normalize(in))}
		loc, _ := h.PageLocalizer(w, r)
		status := apperrors.HTTPStatus(err)
		var errs fieldErrors
		if errors.As(err, &errs) {
			status = http.StatusUnprocessableEntity
			view.FormErrors = localizedFieldErrors(loc, errs)
		} else {
			view.Error = weberror.PublicMessage(loc, err)
		}
		h.writeList(w, r, status, view)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.peneiras.notice_created").WithArg(normalize(in).Titulo))
	httpx.WriteRedirect(w, r, routepath.AppPeneiras)
}

func (h handlers) handleEnrollRoute(w http.ResponseWriter, r *http.Request) {
	h.handleMembership(w, r, h.service.enroll, "web.peneiras.notice_enrolled")
}

func (h handlers) handleLeaveRoute(w http.ResponseWriter, r *http.Request) {
	h.handleMembership(w, r, h.service.leave, "web.peneiras.notice_left")
}

// handleMembership runs an enroll or leave action. The backend exposes
// neither yet, so the usual outcome is an error notice.
func (h handlers) handleMembership(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, userID string, peneiraID int64) error, successKey string) {
	peneiraID, ok := routepath.ParseID(r.PathValue("peneiraID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	if err := action(ctx, userID, peneiraID); err != nil {
		if !golearapi.IsNotSupported(err) && apperrors.KindOf(err) != apperrors.KindNotSupported {
			h.WriteError(w, r, err)
			return
		}
		flash.Write(w, r, flash.NoticeError("web.peneiras.error_enroll_unsupported"))
		httpx.WriteRedirect(w, r, routepath.AppPeneiras)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess(successKey))
	httpx.WriteRedirect(w, r, routepath.AppPeneiras)
}

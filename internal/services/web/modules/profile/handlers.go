package profile

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/platform/flash"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/platform/weberror"
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

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	p, err := h.service.load(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	counts, err := h.service.counts(ctx, p.ID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, "web.profile.title")
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title}, webtemplates.ProfileFragment(profileview.Build(p, counts, true, loc), loc))
}

func (h handlers) handleEditPage(w http.ResponseWriter, r *http.Request) {
	h.writeEdit(w, r, http.StatusOK, nil, nil)
}

// writeEdit renders the edit page. submitted carries a rejected form.
func (h handlers) writeEdit(w http.ResponseWriter, r *http.Request, status int, submitted url.Values, formErr error) {
	ctx, userID := h.RequestContextAndUserID(r)
	p, err := h.service.load(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := editView(p, submitted, loc)
	var errs fieldErrors
	if errors.As(formErr, &errs) {
		view.Errors = localizedFieldErrors(loc, errs)
	} else if formErr != nil {
		view.Error = weberror.PublicMessage(loc, formErr)
	}
	title := webtemplates.T(loc, "web.profile.edit_title")
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title}, webtemplates.ProfileEditFragment(view, loc))
}

func (h handlers) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse profile form"))
		return
	}
	ctx, userID := h.RequestContextAndUserID(r)
	current, err := h.service.load(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.service.save(ctx, userID, current.Role, r.PostForm); err != nil {
		h.writeFormFailure(w, r, r.PostForm, err)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.profile.notice_saved"))
	httpx.WriteRedirect(w, r, routepath.AppProfile)
}

// handleStats applies one attribute change and returns the refreshed panel.
// Nothing is persisted until the edit form is saved.
func (h handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse stats form"))
		return
	}
	if _, userID := h.RequestContextAndUserID(r); userID == "" {
		h.WriteError(w, r, requireUserID(userID))
		return
	}
	vector := applyStat(r.PostForm["current"], r.PostForm["estatisticas"], r.PostFormValue("index"))
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.StatsFragment(profileview.Stats(vector, true, loc), loc))
}

func (h handlers) handlePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPictureBytes+(1<<20))
	if err := r.ParseMultipartForm(maxPictureBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeEdit(w, r, http.StatusRequestEntityTooLarge, nil, fieldErrors{"picture": "web.profile.error_picture_size"})
			return
		}
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse picture form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("picture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.writeEdit(w, r, http.StatusUnprocessableEntity, nil, fieldErrors{"picture": "web.profile.error_picture_required"})
			return
		}
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", fmt.Sprintf("read picture: %v", err)))
		return
	}
	defer file.Close()

	ctx, userID := h.RequestContextAndUserID(r)
	picture := golearapi.Upload{Filename: header.Filename, ContentType: header.Header.Get("Content-Type"), Data: file}
	if err := h.service.uploadPicture(ctx, userID, picture); err != nil {
		h.writeFormFailure(w, r, nil, err)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.profile.notice_picture"))
	httpx.WriteRedirect(w, r, routepath.AppProfileEdit)
}

// writeFormFailure re-renders the edit page for field and client errors and
// falls back to the shared error handling otherwise.
func (h handlers) writeFormFailure(w http.ResponseWriter, r *http.Request, submitted url.Values, err error) {
	var errs fieldErrors
	switch {
	case errors.As(err, &errs):
		h.writeEdit(w, r, http.StatusUnprocessableEntity, submitted, err)
	case golearapi.IsUnauthorized(err) || apperrors.HTTPStatus(err) >= http.StatusInternalServerError:
		h.WriteError(w, r, err)
	default:
		h.writeEdit(w, r, apperrors.HTTPStatus(err), submitted, err)
	}
}

package public

import (
	"net/http"
	"strings"

	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/platform/flash"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/platform/publichandler"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	"github.com/golear/golear/internal/services/web/platform/sessioncookie"
	"github.com/golear/golear/internal/services/web/platform/weberror"
	"github.com/golear/golear/internal/services/web/routepath"
	"github.com/golear/golear/internal/services/web/session"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service     service
	requestMeta requestmeta.SchemePolicy
}

func newHandlers(s service, base publichandler.Base, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, requestMeta: policy}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.LandingView{SignedIn: h.IsViewerSignedIn(r)}
	h.WritePublicPage(w, r, webtemplates.T(loc, "web.landing.title"), http.StatusOK, webtemplates.LandingFragment(view, loc))
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if h.IsViewerSignedIn(r) {
		httpx.WriteRedirect(w, r, nextOrFeed(next))
		return
	}
	h.writeLogin(w, r, http.StatusOK, webtemplates.LoginView{Next: next}, nil)
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeLogin(w, r, http.StatusBadRequest, webtemplates.LoginView{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse login form"))
		return
	}
	in := loginInput{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Remember: r.PostFormValue("remember") == "true",
	}
	next := safeNext(r.PostFormValue("next"))
	view := webtemplates.LoginView{Email: in.Email, Next: next, Remember: in.Remember}
	sess, err := h.service.login(r.Context(), in)
	if err != nil {
		h.writeLogin(w, r, apperrors.HTTPStatus(err), view, err)
		return
	}
	sessioncookie.WriteWithPolicy(w, r, sess.ID, session.CookieExpiry(sess), h.requestMeta)
	httpx.WriteRedirect(w, r, nextOrFeed(next))
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, status int, view webtemplates.LoginView, err error) {
	loc, _ := h.PageLocalizer(w, r)
	if err != nil {
		view.Error = weberror.PublicMessage(loc, err)
	}
	h.WritePublicPage(w, r, webtemplates.T(loc, "web.auth.login_title"), status, webtemplates.LoginFragment(view, loc))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, hasSession := sessioncookie.Read(r)
	if hasSession && !requestmeta.HasSameOriginProofWithPolicy(r, h.requestMeta) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	// The cookie goes regardless; a stale store entry expires on its own.
	_ = h.service.logout(r.Context(), sessionID)
	sessioncookie.ClearWithPolicy(w, r, h.requestMeta)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.IsViewerSignedIn(r) {
		httpx.WriteRedirect(w, r, routepath.AppFeed)
		return
	}
	h.writeRegister(w, r, http.StatusOK, webtemplates.RegisterView{}, nil)
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeRegister(w, r, http.StatusBadRequest, webtemplates.RegisterView{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse register form"))
		return
	}
	in := registerInput{
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
		Role:            strings.TrimSpace(r.PostFormValue("role")),
		Nome:            strings.TrimSpace(r.PostFormValue("nome")),
		Posicao:         strings.TrimSpace(r.PostFormValue("posicao")),
		Cidade:          strings.TrimSpace(r.PostFormValue("cidade")),
		Regiao:          strings.TrimSpace(r.PostFormValue("regiao")),
	}
	view := webtemplates.RegisterView{
		Email:   in.Email,
		Nome:    in.Nome,
		Role:    in.Role,
		Posicao: in.Posicao,
		Cidade:  in.Cidade,
		Regiao:  in.Regiao,
	}
	sess, signedIn, err := h.service.register(r.Context(), in)
	if err != nil {
		h.writeRegister(w, r, http.StatusUnprocessableEntity, view, err)
		return
	}
	if !signedIn {
		flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.auth.notice_registered"), h.requestMeta)
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	sessioncookie.WriteWithPolicy(w, r, sess.ID, session.CookieExpiry(sess), h.requestMeta)
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.auth.notice_welcome"), h.requestMeta)
	httpx.WriteRedirect(w, r, routepath.AppFeed)
}

func (h handlers) writeRegister(w http.ResponseWriter, r *http.Request, status int, view webtemplates.RegisterView, err error) {
	loc, _ := h.PageLocalizer(w, r)
	view.Roles = roleOptions(loc)
	if errs, ok := asFieldErrors(err); ok {
		view.Errors = localizedFieldErrors(loc, errs)
	} else if err != nil {
		status = apperrors.HTTPStatus(err)
		view.Error = weberror.PublicMessage(loc, err)
	}
	h.WritePublicPage(w, r, webtemplates.T(loc, "web.auth.register_title"), status, webtemplates.RegisterFragment(view, loc))
}

func (h handlers) handleRecoverPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view := webtemplates.RecoverPasswordView{
		Step:  webtemplates.RecoverStepRequest,
		Email: strings.TrimSpace(query.Get("email")),
		Token: strings.TrimSpace(query.Get("token")),
	}
	if query.Get("step") == webtemplates.RecoverStepReset.String() || view.Token != "" {
		view.Step = webtemplates.RecoverStepReset
	}
	h.writeRecover(w, r, http.StatusOK, view, nil)
}

func (h handlers) handleRecover(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeRecover(w, r, http.StatusBadRequest, webtemplates.RecoverPasswordView{Step: webtemplates.RecoverStepRequest}, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse recovery form"))
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	if r.PostFormValue("step") != webtemplates.RecoverStepReset.String() {
		view := webtemplates.RecoverPasswordView{Step: webtemplates.RecoverStepRequest, Email: email}
		if err := h.service.requestPasswordReset(r.Context(), email); err != nil {
			h.writeRecover(w, r, http.StatusUnprocessableEntity, view, err)
			return
		}
		loc, _ := h.PageLocalizer(w, r)
		view.Step = webtemplates.RecoverStepReset
		view.Notice = webtemplates.T(loc, "web.recover.notice_sent", email)
		h.writeRecover(w, r, http.StatusOK, view, nil)
		return
	}
	in := resetInput{
		Email:           email,
		Token:           strings.TrimSpace(r.PostFormValue("token")),
		Password:        r.PostFormValue("novaSenha"),
		ConfirmPassword: r.PostFormValue("confirmarSenha"),
	}
	view := webtemplates.RecoverPasswordView{Step: webtemplates.RecoverStepReset, Email: in.Email, Token: in.Token}
	if err := h.service.resetPassword(r.Context(), in); err != nil {
		h.writeRecover(w, r, http.StatusUnprocessableEntity, view, err)
		return
	}
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.recover.notice_changed"), h.requestMeta)
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) writeRecover(w http.ResponseWriter, r *http.Request, status int, view webtemplates.RecoverPasswordView, err error) {
	loc, _ := h.PageLocalizer(w, r)
	if errs, ok := asFieldErrors(err); ok {
		view.Errors = localizedFieldErrors(loc, errs)
	} else if err != nil {
		status = apperrors.HTTPStatus(err)
		view.Error = weberror.PublicMessage(loc, err)
	}
	title := webtemplates.T(loc, "web.recover.title_request")
	if view.Step == webtemplates.RecoverStepReset {
		title = webtemplates.T(loc, "web.recover.title_reset")
	}
	h.WritePublicPage(w, r, title, status, webtemplates.RecoverPasswordFragment(view, loc))
}

func (h handlers) handlePeneiras(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	items, err := h.service.listPeneiras(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.PeneirasView{Items: publicPeneiraCards(items, lang)}
	if !h.IsViewerSignedIn(r) {
		view.SignInURL = routepath.LoginWithNext(routepath.AppPeneiras)
	}
	h.WritePublicPage(w, r, webtemplates.T(loc, "web.peneiras.title"), http.StatusOK, webtemplates.PeneirasFragment(view, loc))
}

func nextOrFeed(next string) string {
	if next == "" {
		return routepath.AppFeed
	}
	return next
}

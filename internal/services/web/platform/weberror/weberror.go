// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	module "github.com/golear/golear/internal/services/web/module"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/platform/pagerender"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// depsResolver adapts module dependencies to the page renderer.
type depsResolver struct {
	deps module.Dependencies
}

func (d depsResolver) ResolveRequestViewer(r *http.Request) module.Viewer {
	if d.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return d.deps.ResolveViewer(r)
}

func (d depsResolver) ResolveRequestLanguage(r *http.Request) string {
	if d.deps.ResolveLanguage == nil {
		return ""
	}
	return d.deps.ResolveLanguage(r)
}

// WriteAppError writes a localized app-shell error response for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	err := pagerender.WriteModulePage(w, r, depsResolver{deps: deps}, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. A remote
// 401 means the stored token is no longer accepted: the session is ended and
// the browser is sent to the login page.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	if golearapi.IsUnauthorized(err) {
		if deps.EndSession != nil {
			deps.EndSession(w, r)
		}
		next := ""
		if r != nil && r.URL != nil && r.Method == http.MethodGet {
			next = r.URL.RequestURI()
		}
		httpx.WriteRedirect(w, r, routepath.LoginWithNext(next))
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

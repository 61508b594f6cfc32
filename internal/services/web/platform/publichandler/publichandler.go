// Package publichandler provides a shared base for unauthenticated web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across public modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/golear/golear/internal/services/web/module"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/platform/pagerender"
	"github.com/golear/golear/internal/services/web/platform/weberror"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

// Base provides shared error handling and page rendering for public (unauthenticated)
// modules. Embed this in handler structs to get WritePublicPage, WriteNotFound,
// WriteError, and optional viewer resolution for free.
type Base struct {
	resolveViewer         module.ResolveViewer
	resolveViewerSignedIn module.ResolveSignedIn
	resolveLanguage       module.ResolveLanguage
}

// Option configures a Base.
type Option func(*Base)

// WithResolveViewer attaches a viewer resolver for app-chrome rendering.
func WithResolveViewer(rv module.ResolveViewer) Option {
	return func(b *Base) { b.resolveViewer = rv }
}

// WithResolveViewerSignedIn attaches a direct signed-in resolver to avoid coupling
// auth state to profile metadata.
func WithResolveViewerSignedIn(resolver module.ResolveSignedIn) Option {
	return func(b *Base) { b.resolveViewerSignedIn = resolver }
}

// WithResolveLanguage attaches a request language resolver.
func WithResolveLanguage(resolver module.ResolveLanguage) Option {
	return func(b *Base) { b.resolveLanguage = resolver }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// ResolveRequestViewer resolves viewer state for the request.
// Returns a zero Viewer when no resolver is configured.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// IsViewerSignedIn reports whether the current request is authenticated.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	if b.resolveViewerSignedIn != nil {
		return b.resolveViewerSignedIn(r)
	}
	return false
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// WritePublicPage renders a full public page (HTMX-aware).
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     &webtemplates.AppMainHeader{Title: title},
		Fragment:   body,
	}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// WriteNotFound renders a localized 404 error page using the public layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.writeErrorState(w, r, http.StatusNotFound)
}

// WriteError renders a user-safe error response: app error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if weberror.ShouldRenderAppError(statusCode) {
		b.writeErrorState(w, r, statusCode)
		return
	}
	loc, _ := b.PageLocalizer(w, r)
	http.Error(w, weberror.PublicMessage(loc, err), statusCode)
}

func (b Base) writeErrorState(w http.ResponseWriter, r *http.Request, statusCode int) {
	loc, _ := b.PageLocalizer(w, r)
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, loc),
	}); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

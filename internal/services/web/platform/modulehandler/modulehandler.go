// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules (those mounted under /app/) share common handler infrastructure
// for user resolution, localization, page rendering, and error handling. This package
// extracts that shared scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/golear/golear/internal/services/web/module"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/platform/pagerender"
	"github.com/golear/golear/internal/services/web/platform/webctx"
	"github.com/golear/golear/internal/services/web/platform/weberror"
	webtemplates "github.com/golear/golear/internal/services/web/templates"

	"golang.org/x/text/language"
)

// Base carries the shared request-scoped resolvers used by protected module handlers.
// Embed this in module handler structs to get standard user resolution, localization,
// page rendering, and error writing without duplicating boilerplate.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from the module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with a fixed signed-in viewer, suitable
// for module tests that do not exercise session resolution.
func NewTestBase(viewer module.Viewer) Base {
	return Base{deps: module.Dependencies{
		ResolveViewer:   func(*http.Request) module.Viewer { return viewer },
		ResolveUserID:   func(*http.Request) string { return viewer.UserID },
		ResolveLanguage: func(*http.Request) string { return "" },
		ResolveSignedIn: func(*http.Request) bool { return viewer.SignedIn() },
		ResolveToken:    func(*http.Request) string { return "" },
	}}
}

// Dependencies returns the resolvers the base was built with.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return b.deps.ResolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.deps.ResolveLanguage == nil {
		return ""
	}
	return b.deps.ResolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.deps.ResolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// RequestUserID extracts the authenticated user ID from the request.
func (b Base) RequestUserID(r *http.Request) string {
	if r == nil || b.deps.ResolveUserID == nil {
		return ""
	}
	return strings.TrimSpace(b.deps.ResolveUserID(r))
}

// RequestContextAndUserID returns a context carrying the session bearer token
// (for downstream API calls) and the raw user ID string.
func (b Base) RequestContextAndUserID(r *http.Request) (context.Context, string) {
	ctx := webctx.WithToken(r, b.deps.ResolveToken)
	return ctx, b.RequestUserID(r)
}

// RequestLocaleTag returns the resolved language tag for the request, suitable
// for locale resolution. Prefer ResolveRequestLanguage for display language and
// RequestContextAndUserID for user-scoped context.
func (b Base) RequestLocaleTag(r *http.Request) language.Tag {
	return webi18n.ResolveTag(r, b.deps.ResolveLanguage)
}

// WritePage renders a full module page (HTMX-aware) with the given title,
// header, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	header *webtemplates.AppMainHeader,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     header,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders component without the app shell.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, component); err != nil {
		b.WriteError(w, r, err)
	}
}

// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/golear/golear/internal/services/web/module"
	flashnotice "github.com/golear/golear/internal/services/web/platform/flash"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

// RequestResolver resolves viewer and language state from a request.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Header     *webtemplates.AppMainHeader
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared app-shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.AppMainContent(page.Header).Render(ctx, &buf); err != nil {
			return err
		}
		return writeHTML(w, statusCode, buf.Bytes())
	}

	viewer := module.Viewer{}
	if resolver != nil {
		viewer = resolver.ResolveRequestViewer(r)
	}
	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	layout := webtemplates.AppLayout(webtemplates.LayoutData{
		Title:       page.Title,
		Lang:        lang,
		CurrentPath: currentPath,
		Viewer:      viewer,
		Header:      page.Header,
		Toast:       resolveFlashToast(w, r, loc),
		Languages:   webi18n.LanguageOptions(loc, r, lang),
		Loc:         loc,
	})
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}
	return writeHTML(w, statusCode, buf.Bytes())
}

// WriteFragment writes component alone, for HTMX partial swaps that target an
// element other than the main region.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if component == nil {
		component = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	return writeHTML(w, statusCode, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(body)
	return err
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.AppToast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	var message string
	if notice.Arg != "" {
		message = strings.TrimSpace(loc.Sprintf(notice.Key, notice.Arg))
	} else {
		message = strings.TrimSpace(loc.Sprintf(notice.Key))
	}
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.AppToast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}

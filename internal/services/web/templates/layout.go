package templates

import (
	"github.com/a-h/templ"
	module "github.com/golear/golear/internal/services/web/module"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/routepath"
	webstatic "github.com/golear/golear/internal/services/web/static"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// LanguageOption is one entry of the language switcher.
type LanguageOption = webi18n.LanguageOption

// AppMainHeader is the heading shown above module content.
type AppMainHeader struct {
	Title    string
	Subtitle string
}

// AppToast is a one-time notice rendered by the layout.
type AppToast struct {
	Kind    string
	Message string
}

// LayoutData carries the chrome shared by every full page.
type LayoutData struct {
	Title       string
	Lang        string
	CurrentPath string
	Viewer      module.Viewer
	Header      *AppMainHeader
	Toast       *AppToast
	Languages   []LanguageOption
	Loc         Localizer
}

type navLink struct {
	href string
	key  string
}

var appNav = []navLink{
	{href: routepath.AppFeed, key: "web.nav.feed"},
	{href: routepath.AppPeneiras, key: "web.nav.peneiras"},
	{href: routepath.AppCompeticoes, key: "web.nav.competicoes"},
	{href: routepath.AppSearch, key: "web.nav.search"},
	{href: routepath.AppPlans, key: "web.nav.plans"},
	{href: routepath.AppProfile, key: "web.nav.profile"},
}

var publicNav = []navLink{
	{href: routepath.Peneiras, key: "web.nav.peneiras"},
	{href: routepath.Login, key: "web.nav.login"},
	{href: routepath.Register, key: "web.nav.register"},
}

// AppLayout renders a full document around the children component.
func AppLayout(data LayoutData) templ.Component {
	return component(func(m *markup) {
		writeDocumentStart(m, data)
		writeNavbar(m, data)
		writeBackendBanner(m, data)
		writeToast(m, data.Toast)
		m.component(AppMainContent(data.Header))
		writeFooter(m, data)
		m.raw("</body></html>")
	})
}

// PublicLayout renders a full document for unauthenticated pages.
func PublicLayout(data LayoutData) templ.Component {
	return AppLayout(data)
}

// AppMainContent renders the swappable main region. HTMX requests receive
// only this fragment.
func AppMainContent(header *AppMainHeader) templ.Component {
	return component(func(m *markup) {
		m.raw(`<main id="main" class="container">`)
		if header != nil && header.Title != "" {
			m.raw(`<header class="page-header">`)
			m.elem("h1", "", header.Title)
			if header.Subtitle != "" {
				m.elem("p", "page-subtitle", header.Subtitle)
			}
			m.raw("</header>")
		}
		m.children()
		m.raw("</main>")
	})
}

func writeDocumentStart(m *markup, data LayoutData) {
	lang := data.Lang
	if lang == "" {
		lang = "pt-BR"
	}
	appName := T(data.Loc, "core.app_name")
	title := appName
	if data.Title != "" {
		title = data.Title + " | " + appName
	}
	m.raw("<!doctype html><html")
	m.attr("lang", lang)
	m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	m.raw(`<meta name="description"`)
	m.attr("content", T(data.Loc, "web.layout.meta_description"))
	m.raw("><title>")
	m.text(title)
	m.raw("</title>")
	m.raw(`<link rel="stylesheet"`)
	m.attr("href", routepath.StaticPrefix+webstatic.Stylesheet)
	m.raw(`><script defer`)
	m.attr("src", htmxScriptURL)
	m.raw(`></script><script defer`)
	m.attr("src", routepath.StaticPrefix+webstatic.Script)
	m.raw(`></script></head><body hx-boost="true" hx-target="#main" hx-swap="outerHTML">`)
}

func writeNavbar(m *markup, data LayoutData) {
	m.raw(`<nav class="navbar" aria-label="main"><a class="brand"`)
	if data.Viewer.SignedIn() {
		m.attr("href", routepath.AppFeed)
	} else {
		m.attr("href", routepath.Root)
	}
	m.raw(">")
	m.text(T(data.Loc, "core.app_name"))
	m.raw(`</a><ul class="nav-links">`)
	links := publicNav
	if data.Viewer.SignedIn() {
		links = appNav
	}
	for _, link := range links {
		m.raw("<li><a")
		m.attr("href", link.href)
		if link.href == data.CurrentPath {
			m.attr("aria-current", "page")
		}
		m.raw(">")
		m.text(T(data.Loc, link.key))
		m.raw("</a></li>")
	}
	m.raw("</ul>")
	if data.Viewer.SignedIn() {
		m.raw(`<div class="nav-viewer"><a class="nav-avatar"`)
		m.attr("href", data.Viewer.ProfileURL)
		m.raw("><img")
		m.url("src", data.Viewer.AvatarURL)
		m.attr("alt", data.Viewer.DisplayName)
		m.raw(` width="32" height="32"><span>`)
		m.text(data.Viewer.DisplayName)
		m.raw(`</span></a><form method="post" hx-boost="false"`)
		m.attr("action", routepath.Logout)
		m.raw(`><button type="submit" class="link-button">`)
		m.text(T(data.Loc, "web.nav.logout"))
		m.raw("</button></form></div>")
	}
	m.raw("</nav>")
}

func writeBackendBanner(m *markup, data LayoutData) {
	if !data.Viewer.BackendWaking {
		return
	}
	m.raw(`<div id="backend-waking" class="banner banner-warning" role="status">`)
	m.text(T(data.Loc, "web.layout.backend_waking"))
	m.raw("</div>")
}

func writeToast(m *markup, toast *AppToast) {
	if toast == nil || toast.Message == "" {
		return
	}
	m.raw(`<div id="app-toast" role="status"`)
	m.classes("toast", "toast-"+toast.Kind)
	m.raw(">")
	m.text(toast.Message)
	m.raw("</div>")
}

func writeFooter(m *markup, data LayoutData) {
	m.raw(`<footer class="footer"><span>`)
	m.text(T(data.Loc, "web.layout.footer"))
	m.raw("</span>")
	if len(data.Languages) > 0 {
		m.raw(`<ul class="language-switcher">`)
		for _, option := range data.Languages {
			m.raw("<li><a hx-boost=\"false\"")
			m.attr("href", option.URL)
			m.attr("hreflang", option.Tag)
			if option.Active {
				m.attr("aria-current", "true")
			}
			m.raw(">")
			m.text(option.Label)
			m.raw("</a></li>")
		}
		m.raw("</ul>")
	}
	m.raw("</footer>")
}

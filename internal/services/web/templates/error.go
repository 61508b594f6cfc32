package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/golear/golear/internal/services/web/routepath"
)

const appErrorBackHomeTextKey = "web.error.action_back_home"

type appErrorCopy struct {
	pageTitle string
	heading   string
	message   string
}

var appErrorCopies = map[int]appErrorCopy{
	http.StatusNotFound: {
		pageTitle: "web.error.page_title_not_found",
		heading:   "web.error.title_not_found",
		message:   "web.error.message_not_found",
	},
	http.StatusServiceUnavailable: {
		pageTitle: "web.error.page_title_unavailable",
		heading:   "web.error.title_unavailable",
		message:   "web.error.message_unavailable",
	},
	http.StatusInternalServerError: {
		pageTitle: "web.error.page_title_server_error",
		heading:   "web.error.title_server_error",
		message:   "web.error.message_server_error",
	},
}

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, appErrorCopies[normalizeAppErrorStatus(statusCode)].pageTitle)
}

// AppErrorState renders the shared error panel. Statuses other than 404 and
// 503 are shown as a server error.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	status := normalizeAppErrorStatus(statusCode)
	text := appErrorCopies[status]
	return component(func(m *markup) {
		m.raw(`<section id="app-error-state" class="error-state"`)
		m.attr("data-status", formatID(int64(status)))
		m.raw(">")
		m.elem("h2", "", T(loc, text.heading))
		m.elem("p", "", T(loc, text.message))
		m.raw(`<a class="button"`)
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(T(loc, appErrorBackHomeTextKey))
		m.raw("</a></section>")
	})
}

func normalizeAppErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}

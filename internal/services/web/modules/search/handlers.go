package search

import (
	"log/slog"
	"net/http"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
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
	ctx, viewerID := h.RequestContextAndUserID(r)
	filters := golearapi.SearchFiltersFromValues(r.URL.Query())
	out, err := h.service.run(ctx, viewerID, filters)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.SearchView{
		Filters:         filterFields(out.Filters, loc),
		Searched:        out.Searched,
		Results:         resultCards(out.Results, loc),
		Recommendations: recommendationCards(out.Recommendations, loc),
	}
	if out.Failed {
		slog.WarnContext(ctx, "search backend failed", "searched", out.Searched)
		view.Notice = webtemplates.T(loc, "web.search.error_unavailable")
	}
	title := webtemplates.T(loc, "web.search.title")
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title}, webtemplates.SearchFragment(view, loc))
}

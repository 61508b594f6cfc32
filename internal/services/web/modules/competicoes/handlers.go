package competicoes

import (
	"errors"
	"net/http"

	"github.com/golear/golear/internal/services/golearapi"
	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	"github.com/golear/golear/internal/services/web/platform/flash"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
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
	h.writeList(w, r, http.StatusOK, webtemplates.CompeticoesView{})
}

func (h handlers) writeList(w http.ResponseWriter, r *http.Request, status int, view webtemplates.CompeticoesView) {
	ctx, userID := h.RequestContextAndUserID(r)
	items, err := h.service.list(ctx, userID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	view.CanCreate = h.ResolveRequestViewer(r).Is(golearapi.RoleClube)
	view.Items = make([]webtemplates.CompeticaoCard, 0, len(items))
	for _, item := range items {
		view.Items = append(view.Items, webtemplates.CompeticaoCard{
			ID:         item.ID,
			Nome:       item.Nome,
			Descricao:  item.Descricao,
			DataInicio: webi18n.FormatDate(item.DataInicio, lang),
			DataFim:    webi18n.FormatDate(item.DataFim, lang),
		})
	}
	title := webtemplates.T(loc, "web.competicoes.title")
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title}, webtemplates.CompeticoesFragment(view, loc))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse competicao form"))
		return
	}
	in := normalize(golearapi.Competicao{
		Nome:       r.PostFormValue("nome"),
		Descricao:  r.PostFormValue("descricao"),
		DataInicio: r.PostFormValue("data_inicio"),
		DataFim:    r.PostFormValue("data_fim"),
	})
	ctx, userID := h.RequestContextAndUserID(r)
	if _, err := h.service.create(ctx, userID, h.ResolveRequestViewer(r).Role, in); err != nil {
		if golearapi.IsUnauthorized(err) || apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
			h.WriteError(w, r, err)
			return
		}
		loc, _ := h.PageLocalizer(w, r)
		view := webtemplates.CompeticoesView{Form: webtemplates.CompeticaoForm{
			Nome:       in.Nome,
			Descricao:  in.Descricao,
			DataInicio: in.DataInicio,
			DataFim:    in.DataFim,
		}}
		status := apperrors.HTTPStatus(err)
		var errs fieldErrors
		if errors.As(err, &errs) {
			status = http.StatusUnprocessableEntity
			view.FormErrors = make(map[string]string, len(errs))
			for name, key := range errs {
				view.FormErrors[name] = webtemplates.T(loc, key)
			}
		} else {
			view.Error = weberror.PublicMessage(loc, err)
		}
		h.writeList(w, r, status, view)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.competicoes.notice_created").WithArg(in.Nome))
	httpx.WriteRedirect(w, r, routepath.AppCompeticoes)
}

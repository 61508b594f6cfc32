package templates

import (
	"github.com/a-h/templ"
	"github.com/golear/golear/internal/services/web/routepath"
)

// PeneiraCard is one tryout listing.
type PeneiraCard struct {
	ID         int64
	Titulo     string
	Descricao  string
	Local      string
	DataEvento string
	Estado     string
	Idade      string
	Posicao    string
	Detalhes   string
	Objetivo   string
	EnrollURL  string
	LeaveURL   string
}

// PeneiraForm holds the create form values.
type PeneiraForm struct {
	Titulo     string
	Descricao  string
	Local      string
	DataEvento string
	Estado     string
	Idade      string
	Posicao    string
	Detalhes   string
	Objetivo   string
}

// PeneirasView is the tryout list page.
type PeneirasView struct {
	Items      []PeneiraCard
	CanCreate  bool
	CanEnroll  bool
	SignInURL  string
	Form       PeneiraForm
	FormErrors map[string]string
	Error      string
}

// CompeticaoCard is one competition.
type CompeticaoCard struct {
	ID         int64
	Nome       string
	Descricao  string
	DataInicio string
	DataFim    string
}

// CompeticaoForm holds the create form values.
type CompeticaoForm struct {
	Nome       string
	Descricao  string
	DataInicio string
	DataFim    string
}

// CompeticoesView is the competition list page.
type CompeticoesView struct {
	Items      []CompeticaoCard
	CanCreate  bool
	Form       CompeticaoForm
	FormErrors map[string]string
	Error      string
}

// PeneirasFragment renders the tryout list and, for scouts, the create form.
func PeneirasFragment(view PeneirasView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="peneiras" class="listing-page">`)
		if view.CanCreate {
			m.raw(`<details class="card create-panel"`)
			m.flag("open", view.Error != "" || len(view.FormErrors) > 0)
			m.raw("><summary>")
			m.text(T(loc, "web.peneiras.action_new"))
			m.raw(`</summary><form id="peneira-form" class="form" method="post"`)
			m.attr("action", routepath.AppPeneirasCreate)
			m.raw(">")
			writeFormError(m, view.Error)
			errs := view.FormErrors
			f := view.Form
			m.input(field{Name: "titulo", Label: T(loc, "web.peneiras.field_title"), Value: f.Titulo, Required: true, Error: errs["titulo"]})
			m.input(field{Name: "descricao", Type: "textarea", Label: T(loc, "web.peneiras.field_description"), Value: f.Descricao, Required: true, Error: errs["descricao"]})
			m.input(field{Name: "local", Label: T(loc, "web.peneiras.field_location"), Value: f.Local, Required: true, Error: errs["local"]})
			m.input(field{Name: "data_evento", Type: "date", Label: T(loc, "web.peneiras.field_date"), Value: f.DataEvento, Required: true, Error: errs["data_evento"]})
			m.input(field{Name: "estado", Label: T(loc, "web.peneiras.field_state"), Value: f.Estado})
			m.input(field{Name: "idade", Label: T(loc, "web.peneiras.field_age"), Value: f.Idade})
			m.input(field{Name: "posicao", Label: T(loc, "web.profile.field_position"), Value: f.Posicao})
			m.input(field{Name: "objetivo", Label: T(loc, "web.peneiras.field_goal"), Value: f.Objetivo})
			m.input(field{Name: "detalhes", Type: "textarea", Label: T(loc, "web.peneiras.field_details"), Value: f.Detalhes})
			writeSubmit(m, T(loc, "web.peneiras.action_create"))
			m.raw("</form></details>")
		}
		if view.SignInURL != "" {
			m.raw(`<p class="hint">`)
			writeLinkButton(m, view.SignInURL, T(loc, "web.peneiras.sign_in_to_enroll"), "")
			m.raw("</p>")
		}
		if len(view.Items) == 0 {
			m.elem("p", "empty-state", T(loc, "web.peneiras.empty"))
		}
		m.raw(`<ul class="cards">`)
		for _, item := range view.Items {
			writePeneiraCard(m, item, view.CanEnroll, loc)
		}
		m.raw("</ul></div>")
	})
}

func writePeneiraCard(m *markup, item PeneiraCard, canEnroll bool, loc Localizer) {
	m.raw(`<li class="card peneira"`)
	m.attr("data-peneira-id", formatID(item.ID))
	m.raw(">")
	m.elem("h3", "", item.Titulo)
	m.raw(`<p class="meta">`)
	m.text(item.Local)
	if item.Estado != "" {
		m.text(" · " + item.Estado)
	}
	if item.DataEvento != "" {
		m.text(" · " + item.DataEvento)
	}
	m.raw("</p>")
	m.elem("p", "", item.Descricao)
	m.raw(`<dl class="facts">`)
	writeFact(m, T(loc, "web.peneiras.field_age"), item.Idade)
	writeFact(m, T(loc, "web.profile.field_position"), item.Posicao)
	writeFact(m, T(loc, "web.peneiras.field_goal"), item.Objetivo)
	writeFact(m, T(loc, "web.peneiras.field_details"), item.Detalhes)
	m.raw("</dl>")
	if canEnroll {
		m.raw(`<div class="actions">`)
		writePostButton(m, item.EnrollURL, T(loc, "web.peneiras.action_enroll"), "button")
		writePostButton(m, item.LeaveURL, T(loc, "web.peneiras.action_leave"), "button button-secondary")
		m.raw("</div>")
	}
	m.raw("</li>")
}

// CompeticoesFragment renders the competition list and, for clubs, the
// create form.
func CompeticoesFragment(view CompeticoesView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="competicoes" class="listing-page">`)
		if view.CanCreate {
			m.raw(`<details class="card create-panel"`)
			m.flag("open", view.Error != "" || len(view.FormErrors) > 0)
			m.raw("><summary>")
			m.text(T(loc, "web.competicoes.action_new"))
			m.raw(`</summary><form id="competicao-form" class="form" method="post"`)
			m.attr("action", routepath.AppCompeticoesCreate)
			m.raw(">")
			writeFormError(m, view.Error)
			errs := view.FormErrors
			f := view.Form
			m.input(field{Name: "nome", Label: T(loc, "web.competicoes.field_name"), Value: f.Nome, Required: true, Error: errs["nome"]})
			m.input(field{Name: "descricao", Type: "textarea", Label: T(loc, "web.competicoes.field_description"), Value: f.Descricao, Required: true, Error: errs["descricao"]})
			m.input(field{Name: "data_inicio", Type: "date", Label: T(loc, "web.competicoes.field_start"), Value: f.DataInicio, Required: true, Error: errs["data_inicio"]})
			m.input(field{Name: "data_fim", Type: "date", Label: T(loc, "web.competicoes.field_end"), Value: f.DataFim, Required: true, Error: errs["data_fim"]})
			writeSubmit(m, T(loc, "web.competicoes.action_create"))
			m.raw("</form></details>")
		}
		if len(view.Items) == 0 {
			m.elem("p", "empty-state", T(loc, "web.competicoes.empty"))
		}
		m.raw(`<ul class="cards">`)
		for _, item := range view.Items {
			m.raw(`<li class="card competicao"`)
			m.attr("data-competicao-id", formatID(item.ID))
			m.raw(">")
			m.elem("h3", "", item.Nome)
			m.elem("p", "meta", T(loc, "web.competicoes.period", item.DataInicio, item.DataFim))
			m.elem("p", "", item.Descricao)
			m.raw("</li>")
		}
		m.raw("</ul></div>")
	})
}

func writeFact(m *markup, label, value string) {
	if value == "" {
		return
	}
	m.elem("dt", "", label)
	m.elem("dd", "", value)
}

// writePostButton renders a single-button form posting to action.
func writePostButton(m *markup, action, label, class string) {
	if action == "" {
		return
	}
	m.raw(`<form method="post" class="inline-form"`)
	m.attr("action", action)
	m.raw(`><button type="submit"`)
	m.classes(class)
	m.raw(">")
	m.text(label)
	m.raw("</button></form>")
}

package templates

import (
	"github.com/a-h/templ"
	"github.com/golear/golear/internal/services/web/routepath"
)

// UserCard is one user in search results or recommendations.
type UserCard struct {
	ID       int64
	Name     string
	Role     string
	Avatar   string
	Position string
	Location string
	URL      string
}

// SearchFilterField is one filter control.
type SearchFilterField struct {
	Name    string
	Label   string
	Value   string
	Options []RoleOption
}

// SearchView is the user search page.
type SearchView struct {
	Filters         []SearchFilterField
	Results         []UserCard
	Recommendations []UserCard
	Searched        bool
	Notice          string
}

// SearchFragment renders the filter form and either results or
// recommendations.
func SearchFragment(view SearchView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="search" class="search-layout"><form id="search-form" class="card form filters" method="get"`)
		m.attr("action", routepath.AppSearch)
		m.raw(">")
		for _, filter := range view.Filters {
			f := field{Name: filter.Name, Label: filter.Label, Value: filter.Value}
			if len(filter.Options) > 0 {
				f.Options = append(f.Options, option{Value: "", Label: T(loc, "web.search.any")})
				for _, opt := range filter.Options {
					f.Options = append(f.Options, option{Value: opt.Value, Label: opt.Label, Selected: opt.Value == filter.Value})
				}
			}
			m.input(f)
		}
		writeSubmit(m, T(loc, "web.search.action_search"))
		m.raw(" ")
		writeLinkButton(m, routepath.AppSearch, T(loc, "web.search.action_clear"), "button button-secondary")
		m.raw("</form><section>")
		if view.Notice != "" {
			m.raw(`<p class="notice notice-error" role="status">`)
			m.text(view.Notice)
			m.raw("</p>")
		}
		if view.Searched {
			m.elem("h2", "", T(loc, "web.search.results_title", len(view.Results)))
			writeUserCards(m, "search-results", view.Results, T(loc, "web.search.results_empty"))
		} else {
			m.elem("h2", "", T(loc, "web.search.recommendations_title"))
			writeUserCards(m, "recommendations", view.Recommendations, T(loc, "web.search.recommendations_empty"))
		}
		m.raw("</section></div>")
	})
}

func writeUserCards(m *markup, id string, users []UserCard, empty string) {
	if len(users) == 0 {
		m.elem("p", "empty-state", empty)
		return
	}
	m.raw(`<ul class="cards users"`)
	m.attr("id", id)
	m.raw(">")
	for _, user := range users {
		m.raw(`<li class="card user"><a`)
		m.attr("href", user.URL)
		m.raw("><img")
		m.url("src", user.Avatar)
		m.attr("alt", user.Name)
		m.raw(` width="56" height="56">`)
		m.elem("strong", "", user.Name)
		m.raw("</a>")
		if user.Role != "" {
			m.elem("span", "badge", user.Role)
		}
		if user.Position != "" {
			m.elem("p", "", user.Position)
		}
		if user.Location != "" {
			m.elem("p", "meta", user.Location)
		}
		m.raw("</li>")
	}
	m.raw("</ul>")
}

package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/golear/golear/internal/services/web/routepath"
)

// ProfileFact is one labelled profile attribute.
type ProfileFact struct {
	Label string
	Value string
}

// ProfileLink is one external contact link.
type ProfileLink struct {
	Label string
	URL   string
}

// ConnectionAction is the follow button state on another user's profile.
type ConnectionAction struct {
	Connected     bool
	ConnectURL    string
	DisconnectURL string
}

// ProfileView is a rendered profile, own or another user's.
type ProfileView struct {
	UserID     int64
	Name       string
	Email      string
	Role       string
	Bio        string
	Avatar     string
	Banner     string
	Location   string
	Facts      []ProfileFact
	Links      []ProfileLink
	Followers  int
	Following  int
	Stats      StatsView
	ShowStats  bool
	Own        bool
	EditURL    string
	Connection *ConnectionAction
}

// StatRow is one attribute of the stats panel.
type StatRow struct {
	Index int
	Key   string
	Label string
	Value int
}

// StatsView is the attribute panel. When Editable it posts each change to
// PostURL and swaps itself with the response.
type StatsView struct {
	Rows      []StatRow
	Total     int
	Cap       int
	Max       int
	Remaining int
	Editable  bool
	PostURL   string
}

// ProfileField is one input of the profile edit form.
type ProfileField struct {
	Name  string
	Label string
	Type  string
	Value string
}

// ProfileEditView is the profile edit page.
type ProfileEditView struct {
	Avatar string
	Fields []ProfileField
	Stats  StatsView
	Errors map[string]string
	Error  string
}

// ProfileFragment renders a profile page.
func ProfileFragment(view ProfileView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<article id="profile" class="profile"`)
		m.attr("data-user-id", formatID(view.UserID))
		m.raw(">")
		if view.Banner != "" {
			m.raw(`<div class="profile-banner"><img alt=""`)
			m.url("src", view.Banner)
			m.raw("></div>")
		}
		m.raw(`<header class="profile-header"><img class="avatar"`)
		m.url("src", view.Avatar)
		m.attr("alt", view.Name)
		m.raw(` width="96" height="96"><div>`)
		m.elem("h2", "", view.Name)
		if view.Role != "" {
			m.elem("span", "badge", view.Role)
		}
		if view.Location != "" {
			m.elem("p", "meta", view.Location)
		}
		m.raw(`<p class="connection-counts"><span id="followers-count">`)
		m.text(T(loc, "web.profile.followers", view.Followers))
		m.raw(`</span> <span id="following-count">`)
		m.text(T(loc, "web.profile.following", view.Following))
		m.raw("</span></p></div>")
		m.raw(`<div class="actions">`)
		if view.Own && view.EditURL != "" {
			writeLinkButton(m, view.EditURL, T(loc, "web.profile.action_edit"), "button")
		}
		if c := view.Connection; c != nil {
			if c.Connected {
				writePostButton(m, c.DisconnectURL, T(loc, "web.profile.action_disconnect"), "button button-secondary")
			} else {
				writePostButton(m, c.ConnectURL, T(loc, "web.profile.action_connect"), "button")
			}
		}
		m.raw("</div></header>")
		if view.Bio != "" {
			m.elem("p", "profile-bio", view.Bio)
		}
		if len(view.Facts) > 0 {
			m.raw(`<dl class="facts">`)
			for _, fact := range view.Facts {
				writeFact(m, fact.Label, fact.Value)
			}
			m.raw("</dl>")
		}
		if len(view.Links) > 0 {
			m.raw(`<ul class="profile-links">`)
			for _, link := range view.Links {
				m.raw(`<li><a target="_blank" rel="noopener noreferrer" hx-boost="false"`)
				m.url("href", link.URL)
				m.raw(">")
				m.text(link.Label)
				m.raw("</a></li>")
			}
			m.raw("</ul>")
		}
		if view.ShowStats {
			m.component(StatsFragment(view.Stats, loc))
		}
		m.raw("</article>")
	})
}

// StatsFragment renders the attribute panel.
func StatsFragment(view StatsView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section id="profile-stats" class="card stats">`)
		m.elem("h3", "", T(loc, "web.profile.stats_title"))
		m.raw("<ul>")
		for _, row := range view.Rows {
			index := strconv.Itoa(row.Index)
			m.raw(`<li class="stat"`)
			m.attr("data-attribute", row.Key)
			m.raw(">")
			if view.Editable {
				id := "stat-" + row.Key
				m.raw("<label")
				m.attr("for", id)
				m.raw(">")
				m.text(row.Label)
				m.raw("</label>")
				m.hidden("current", strconv.Itoa(row.Value))
				m.raw(`<input type="number" name="estatisticas" min="0"`)
				m.attr("id", id)
				m.attr("max", strconv.Itoa(view.Max))
				m.attr("value", strconv.Itoa(row.Value))
				m.attr("hx-post", view.PostURL)
				m.attr("hx-vals", `{"index":"`+index+`"}`)
				m.raw(` hx-trigger="change" hx-include="closest section" hx-target="#profile-stats" hx-swap="outerHTML">`)
			} else {
				m.elem("span", "stat-label", row.Label)
				m.raw(`<meter min="0"`)
				m.attr("max", strconv.Itoa(view.Max))
				m.attr("value", strconv.Itoa(row.Value))
				m.raw("></meter>")
				m.elem("span", "stat-value", strconv.Itoa(row.Value))
			}
			m.raw("</li>")
		}
		m.raw(`</ul><p class="stats-total" id="stats-remaining">`)
		m.text(T(loc, "web.profile.stats_remaining", view.Remaining, view.Total, view.Cap))
		m.raw("</p></section>")
	})
}

// ProfileEditFragment renders the profile edit form and the picture upload.
func ProfileEditFragment(view ProfileEditView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="profile-edit">`)
		m.raw(`<form id="profile-picture-form" class="card form" method="post" enctype="multipart/form-data"`)
		m.attr("action", routepath.AppProfilePicture)
		m.raw(`><img class="avatar"`)
		m.url("src", view.Avatar)
		m.raw(` alt="" width="96" height="96">`)
		m.input(field{Name: "picture", Type: "file", Label: T(loc, "web.profile.field_picture"), Extra: "image/*", Required: true, Error: view.Errors["picture"]})
		writeSubmit(m, T(loc, "web.profile.action_upload"))
		m.raw("</form>")
		m.raw(`<form id="profile-form" class="card form" method="post"`)
		m.attr("action", routepath.AppProfileEdit)
		m.raw(">")
		writeFormError(m, view.Error)
		for _, f := range view.Fields {
			m.input(field{Name: f.Name, Label: f.Label, Type: f.Type, Value: f.Value, Error: view.Errors[f.Name]})
		}
		if len(view.Stats.Rows) > 0 {
			m.component(StatsFragment(view.Stats, loc))
		}
		writeSubmit(m, T(loc, "web.profile.action_save"))
		m.raw(` <a class="button button-secondary"`)
		m.attr("href", routepath.AppProfile)
		m.raw(">")
		m.text(T(loc, "web.profile.action_cancel"))
		m.raw("</a></form></div>")
	})
}

package templates

import (
	"github.com/a-h/templ"
	"github.com/golear/golear/internal/services/web/routepath"
)

// LandingView is the public home page.
type LandingView struct {
	SignedIn bool
}

// LoginView is the sign-in form state.
type LoginView struct {
	Email    string
	Next     string
	Remember bool
	Error    string
}

// RegisterView is the sign-up form state.
type RegisterView struct {
	Email   string
	Nome    string
	Role    string
	Posicao string
	Cidade  string
	Regiao  string
	Roles   []RoleOption
	Errors  map[string]string
	Error   string
}

// RoleOption is one selectable account role.
type RoleOption struct {
	Value string
	Label string
}

// RecoverStep selects which password recovery form is shown.
type RecoverStep int

const (
	RecoverStepRequest RecoverStep = iota + 1
	RecoverStepReset
)

func (s RecoverStep) String() string {
	if s == RecoverStepReset {
		return "reset"
	}
	return "request"
}

// RecoverPasswordView is the password recovery form state.
type RecoverPasswordView struct {
	Step    RecoverStep
	Email   string
	Token   string
	Notice  string
	Error   string
	Errors  map[string]string
	Success bool
}

// LandingFragment renders the public home page.
func LandingFragment(view LandingView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section class="hero" id="landing">`)
		m.elem("h2", "", T(loc, "web.landing.headline"))
		m.elem("p", "", T(loc, "web.landing.tagline"))
		m.raw(`<div class="actions">`)
		if view.SignedIn {
			writeLinkButton(m, routepath.AppFeed, T(loc, "web.landing.action_open_feed"), "button")
		} else {
			writeLinkButton(m, routepath.Register, T(loc, "web.landing.action_register"), "button")
			writeLinkButton(m, routepath.Login, T(loc, "web.landing.action_login"), "button button-secondary")
		}
		m.raw("</div></section>")
		m.raw(`<section class="features">`)
		for _, key := range []string{"web.landing.feature_feed", "web.landing.feature_peneiras", "web.landing.feature_search", "web.landing.feature_stats"} {
			m.elem("article", "feature", T(loc, key))
		}
		m.raw("</section>")
	})
}

// LoginFragment renders the sign-in form.
func LoginFragment(view LoginView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<form id="login-form" class="card form" method="post" hx-boost="false"`)
		m.attr("action", routepath.Login)
		m.raw(">")
		writeFormError(m, view.Error)
		if view.Next != "" {
			m.hidden("next", view.Next)
		}
		m.input(field{Name: "email", Type: "email", Label: T(loc, "web.auth.field_email"), Value: view.Email, Required: true})
		m.input(field{Name: "password", Type: "password", Label: T(loc, "web.auth.field_password"), Required: true})
		m.raw(`<label class="checkbox"><input type="checkbox" name="remember" value="true"`)
		m.flag("checked", view.Remember)
		m.raw(">")
		m.text(T(loc, "web.auth.field_remember"))
		m.raw("</label>")
		writeSubmit(m, T(loc, "web.auth.action_login"))
		m.raw(`<p class="form-links">`)
		writeLinkButton(m, routepath.RecoverPassword, T(loc, "web.auth.link_forgot_password"), "")
		writeLinkButton(m, routepath.Register, T(loc, "web.auth.link_register"), "")
		m.raw("</p></form>")
	})
}

// RegisterFragment renders the sign-up form.
func RegisterFragment(view RegisterView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<form id="register-form" class="card form" method="post" hx-boost="false"`)
		m.attr("action", routepath.Register)
		m.raw(">")
		writeFormError(m, view.Error)
		roleOptions := make([]option, 0, len(view.Roles)+1)
		roleOptions = append(roleOptions, option{Value: "", Label: T(loc, "web.auth.role_placeholder")})
		for _, role := range view.Roles {
			roleOptions = append(roleOptions, option{Value: role.Value, Label: role.Label, Selected: role.Value == view.Role})
		}
		m.input(field{Name: "nome", Label: T(loc, "web.auth.field_name"), Value: view.Nome, Error: view.Errors["nome"]})
		m.input(field{Name: "email", Type: "email", Label: T(loc, "web.auth.field_email"), Value: view.Email, Required: true, Error: view.Errors["email"]})
		m.input(field{Name: "password", Type: "password", Label: T(loc, "web.auth.field_password"), Required: true, Error: view.Errors["password"]})
		m.input(field{Name: "confirmPassword", Type: "password", Label: T(loc, "web.auth.field_confirm_password"), Required: true, Error: view.Errors["confirmPassword"]})
		m.input(field{Name: "role", Label: T(loc, "web.auth.field_role"), Options: roleOptions, Required: true, Error: view.Errors["role"]})
		m.input(field{Name: "posicao", Label: T(loc, "web.profile.field_position"), Value: view.Posicao})
		m.input(field{Name: "cidade", Label: T(loc, "web.profile.field_city"), Value: view.Cidade})
		m.input(field{Name: "regiao", Label: T(loc, "web.profile.field_region"), Value: view.Regiao})
		writeSubmit(m, T(loc, "web.auth.action_register"))
		m.raw(`<p class="form-links">`)
		writeLinkButton(m, routepath.Login, T(loc, "web.auth.link_login"), "")
		m.raw("</p></form>")
	})
}

// RecoverPasswordFragment renders the request or reset step of password
// recovery.
func RecoverPasswordFragment(view RecoverPasswordView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<form id="recover-password-form" class="card form" method="post"`)
		m.attr("action", routepath.RecoverPassword)
		m.attr("data-step", view.Step.String())
		m.raw(">")
		writeFormError(m, view.Error)
		if view.Notice != "" {
			m.raw(`<p class="notice notice-success" role="status">`)
			m.text(view.Notice)
			m.raw("</p>")
		}
		if view.Success {
			m.raw("<p>")
			writeLinkButton(m, routepath.Login, T(loc, "web.auth.link_login"), "button")
			m.raw("</p></form>")
			return
		}
		if view.Step == RecoverStepReset {
			m.hidden("step", view.Step.String())
			m.input(field{Name: "email", Type: "email", Label: T(loc, "web.auth.field_email"), Value: view.Email, Required: true, Error: view.Errors["email"]})
			m.input(field{Name: "token", Label: T(loc, "web.recover.field_token"), Value: view.Token, Required: true, Error: view.Errors["token"]})
			m.input(field{Name: "novaSenha", Type: "password", Label: T(loc, "web.recover.field_new_password"), Required: true, Error: view.Errors["novaSenha"]})
			m.input(field{Name: "confirmarSenha", Type: "password", Label: T(loc, "web.auth.field_confirm_password"), Required: true, Error: view.Errors["confirmarSenha"]})
			writeSubmit(m, T(loc, "web.recover.action_reset"))
		} else {
			m.hidden("step", view.Step.String())
			m.elem("p", "hint", T(loc, "web.recover.request_hint"))
			m.input(field{Name: "email", Type: "email", Label: T(loc, "web.auth.field_email"), Value: view.Email, Required: true, Error: view.Errors["email"]})
			writeSubmit(m, T(loc, "web.recover.action_request"))
			m.raw(`<p class="form-links"><a`)
			m.attr("href", routepath.RecoverPassword+"?step=reset")
			m.raw(">")
			m.text(T(loc, "web.recover.link_have_token"))
			m.raw("</a></p>")
		}
		m.raw("</form>")
	})
}

func writeFormError(m *markup, message string) {
	if message == "" {
		return
	}
	m.raw(`<p class="notice notice-error" role="alert">`)
	m.text(message)
	m.raw("</p>")
}

func writeSubmit(m *markup, label string) {
	m.raw(`<button type="submit" class="button">`)
	m.text(label)
	m.raw("</button>")
}

func writeLinkButton(m *markup, href, label, class string) {
	m.raw("<a")
	m.attr("href", href)
	m.classes(class)
	m.raw(">")
	m.text(label)
	m.raw("</a>")
}

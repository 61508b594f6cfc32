package templates

import "github.com/a-h/templ"

// PlanCard is one subscription tier.
type PlanCard struct {
	ID          string
	Name        string
	Price       string
	Description string
	Benefits    []string
	Color       string
	URL         string
}

// CheckoutSteps is the progress indicator shared by the checkout pages.
type CheckoutSteps struct {
	Labels  []string
	Current int
}

// PlansView is the plan catalog.
type PlansView struct {
	Steps CheckoutSteps
	Plans []PlanCard
}

// PaymentMethodOption is one selectable payment method.
type PaymentMethodOption struct {
	Value    string
	Label    string
	Selected bool
}

// CheckoutView is the payment form of one plan.
type CheckoutView struct {
	Steps       CheckoutSteps
	Plan        PlanCard
	Methods     []PaymentMethodOption
	CardMethod  bool
	Values      map[string]string
	Errors      map[string]string
	Error       string
	CheckoutURL string
	BackURL     string
}

// ConfirmationView is the approved checkout summary.
type ConfirmationView struct {
	Steps          CheckoutSteps
	Plan           PlanCard
	Method         string
	ConfirmationID string
	ApprovedAt     string
	ContinueURL    string
}

// PlansFragment renders the plan catalog.
func PlansFragment(view PlansView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="plans">`)
		writeSteps(m, view.Steps)
		m.raw(`<ul class="cards plans">`)
		for _, plan := range view.Plans {
			m.raw(`<li class="card plan"`)
			m.attr("data-plan-id", plan.ID)
			m.attr("style", "border-top-color: "+plan.Color)
			m.raw(">")
			writePlanSummary(m, plan, loc)
			writeLinkButton(m, plan.URL, T(loc, "web.plans.action_choose"), "button")
			m.raw("</li>")
		}
		m.raw("</ul></div>")
	})
}

// CheckoutFragment renders the payment form.
func CheckoutFragment(view CheckoutView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="checkout">`)
		writeSteps(m, view.Steps)
		m.raw(`<div class="checkout-layout"><aside class="card plan">`)
		writePlanSummary(m, view.Plan, loc)
		writeLinkButton(m, view.BackURL, T(loc, "web.plans.action_change"), "")
		m.raw(`</aside><form id="checkout-form" class="card form" method="post"`)
		m.attr("action", view.CheckoutURL)
		m.raw(">")
		writeFormError(m, view.Error)
		m.hidden("plano", view.Plan.ID)
		methods := make([]option, 0, len(view.Methods))
		for _, method := range view.Methods {
			methods = append(methods, option{Value: method.Value, Label: method.Label, Selected: method.Selected})
		}
		v, errs := view.Values, view.Errors
		m.input(field{Name: "formaPagamento", Label: T(loc, "web.plans.field_method"), Options: methods, Required: true, Error: errs["formaPagamento"]})
		m.raw(`<fieldset class="card-fields"`)
		m.flag("hidden", !view.CardMethod)
		m.raw("><legend>")
		m.text(T(loc, "web.plans.card_legend"))
		m.raw("</legend>")
		m.input(field{Name: "numeroCartao", Label: T(loc, "web.plans.field_card_number"), Value: v["numeroCartao"], Placeholder: "0000 0000 0000 0000", Error: errs["numeroCartao"]})
		m.input(field{Name: "nomeCartao", Label: T(loc, "web.plans.field_card_name"), Value: v["nomeCartao"], Error: errs["nomeCartao"]})
		m.input(field{Name: "validade", Label: T(loc, "web.plans.field_expiry"), Value: v["validade"], Placeholder: "MM/AA", Error: errs["validade"]})
		m.input(field{Name: "cvv", Label: T(loc, "web.plans.field_cvv"), Value: v["cvv"], Error: errs["cvv"]})
		m.raw("</fieldset>")
		m.input(field{Name: "cpfCnpj", Label: T(loc, "web.plans.field_tax_id"), Value: v["cpfCnpj"], Required: true, Error: errs["cpfCnpj"]})
		m.input(field{Name: "emailNota", Type: "email", Label: T(loc, "web.plans.field_invoice_email"), Value: v["emailNota"], Required: true, Error: errs["emailNota"]})
		m.input(field{Name: "endereco", Label: T(loc, "web.plans.field_address"), Value: v["endereco"], Required: true, Error: errs["endereco"]})
		m.input(field{Name: "telefone", Type: "tel", Label: T(loc, "web.plans.field_phone"), Value: v["telefone"], Required: true, Error: errs["telefone"]})
		writeSubmit(m, T(loc, "web.plans.action_pay"))
		m.raw("</form></div></div>")
	})
}

// ConfirmationFragment renders the approved checkout.
func ConfirmationFragment(view ConfirmationView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="checkout-confirmation">`)
		writeSteps(m, view.Steps)
		m.raw(`<section class="card confirmation">`)
		m.elem("h2", "", T(loc, "web.plans.confirmation_title"))
		m.elem("p", "", T(loc, "web.plans.confirmation_message", view.Plan.Name))
		m.raw(`<dl class="facts">`)
		writeFact(m, T(loc, "web.plans.confirmation_id"), view.ConfirmationID)
		writeFact(m, T(loc, "web.plans.field_method"), view.Method)
		writeFact(m, T(loc, "web.plans.price_label"), view.Plan.Price)
		writeFact(m, T(loc, "web.plans.approved_at"), view.ApprovedAt)
		m.raw("</dl>")
		writeLinkButton(m, view.ContinueURL, T(loc, "web.plans.action_continue"), "button")
		m.raw("</section></div>")
	})
}

func writeSteps(m *markup, steps CheckoutSteps) {
	if len(steps.Labels) == 0 {
		return
	}
	m.raw(`<ol class="steps">`)
	for i, label := range steps.Labels {
		m.raw("<li")
		switch {
		case i < steps.Current:
			m.classes("step-done")
		case i == steps.Current:
			m.classes("step-current")
			m.attr("aria-current", "step")
		}
		m.raw(">")
		m.text(label)
		m.raw("</li>")
	}
	m.raw("</ol>")
}

func writePlanSummary(m *markup, plan PlanCard, loc Localizer) {
	m.elem("h3", "", plan.Name)
	m.raw(`<p class="price">`)
	m.text(T(loc, "web.plans.price_monthly", plan.Price))
	m.raw("</p>")
	m.elem("p", "", plan.Description)
	m.raw(`<ul class="benefits">`)
	for _, benefit := range plan.Benefits {
		m.elem("li", "", benefit)
	}
	m.raw("</ul>")
}

package plans

import (
	"strings"

	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	checkout "github.com/golear/golear/internal/services/web/plans"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

func steps(current checkout.Step, loc webtemplates.Localizer) webtemplates.CheckoutSteps {
	labels := make([]string, 0, len(checkout.Steps))
	for _, step := range checkout.Steps {
		labels = append(labels, webtemplates.T(loc, step.Key()))
	}
	return webtemplates.CheckoutSteps{Labels: labels, Current: int(current)}
}

func planCard(plan checkout.Plan, lang string) webtemplates.PlanCard {
	return webtemplates.PlanCard{
		ID:          plan.ID,
		Name:        plan.Name,
		Price:       webi18n.FormatPrice(plan.Price, lang),
		Description: plan.Description,
		Benefits:    plan.Benefits,
		Color:       plan.Color,
		URL:         routepath.AppPlan(plan.ID),
	}
}

func methodOptions(selected checkout.Method, loc webtemplates.Localizer) []webtemplates.PaymentMethodOption {
	if selected == "" {
		selected = checkout.MethodCard
	}
	methods := []checkout.Method{checkout.MethodCard, checkout.MethodBoleto}
	options := make([]webtemplates.PaymentMethodOption, 0, len(methods))
	for _, method := range methods {
		options = append(options, webtemplates.PaymentMethodOption{
			Value:    string(method),
			Label:    methodLabel(method, loc),
			Selected: method == selected,
		})
	}
	return options
}

func methodLabel(method checkout.Method, loc webtemplates.Localizer) string {
	return webtemplates.T(loc, "web.plans.method_"+string(method))
}

// paymentValues echoes the submitted form. Card secrets are never re-rendered.
func paymentValues(p checkout.Payment) map[string]string {
	return map[string]string{
		"nomeCartao": p.CardName,
		"validade":   p.Expiry,
		"cpfCnpj":    p.TaxID,
		"emailNota":  p.Email,
		"endereco":   p.Address,
		"telefone":   p.Phone,
	}
}

// localizedFieldErrors turns checkout keys such as plans.error.cvv into
// web catalog keys.
func localizedFieldErrors(loc webtemplates.Localizer, fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, key := range fields {
		out[name] = webtemplates.T(loc, "web.plans.error_"+strings.TrimPrefix(key, "plans.error."))
	}
	return out
}

// Package plans holds the subscription catalog and the checkout flow.
package plans

import "strings"

// Plan is one monthly subscription tier. Price is in BRL.
type Plan struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Benefits    []string
	Color       string
}

var catalog = []Plan{
	{
		ID:          "amador",
		Name:        "Amador",
		Price:       9.99,
		Description: "Plano básico para acompanhar notícias e estatísticas semanais.",
		Benefits:    []string{"Feed básico", "Notícias semanais", "Estatísticas limitadas"},
		Color:       "#4CAF50",
	},
	{
		ID:          "profissional",
		Name:        "Profissional",
		Price:       29.99,
		Description: "Plano intermediário com perfil destacado e alertas de partidas.",
		Benefits:    []string{"Tudo do Amador", "Perfil destacado", "Mais interações", "Alertas de partidas"},
		Color:       "#FF9800",
	},
	{
		ID:          "craque",
		Name:        "Craque",
		Price:       49.99,
		Description: "Plano completo com estatísticas avançadas e recursos exclusivos.",
		Benefits:    []string{"Tudo do Profissional", "Estatísticas avançadas", "Recursos exclusivos", "Acesso antecipado a novidades"},
		Color:       "#1B5E20",
	},
}

// Catalog returns every plan in display order.
func Catalog() []Plan {
	out := make([]Plan, len(catalog))
	for i, plan := range catalog {
		plan.Benefits = append([]string(nil), plan.Benefits...)
		out[i] = plan
	}
	return out
}

// Lookup finds a plan by id.
func Lookup(id string) (Plan, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, plan := range Catalog() {
		if plan.ID == id {
			return plan, true
		}
	}
	return Plan{}, false
}

// Step is a checkout stage.
type Step int

const (
	StepChoose Step = iota
	StepPayment
	StepConfirmation
)

// Steps lists the checkout stages in order.
var Steps = []Step{StepChoose, StepPayment, StepConfirmation}

// Key returns the catalog key of the stage label.
func (s Step) Key() string {
	switch s {
	case StepChoose:
		return "web.plans.step_choose"
	case StepPayment:
		return "web.plans.step_payment"
	default:
		return "web.plans.step_confirmation"
	}
}

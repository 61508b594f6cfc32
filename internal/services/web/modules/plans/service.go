package plans

import (
	"context"
	"net/url"

	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	checkout "github.com/golear/golear/internal/services/web/plans"
)

type service struct {
	processor checkout.Processor
}

func newService(processor checkout.Processor) service {
	return service{processor: processor}
}

// checkout charges plan with the submitted form. The parsed payment is
// returned with validation errors so the form can be re-rendered.
func (s service) checkout(ctx context.Context, plan checkout.Plan, form url.Values) (checkout.Receipt, checkout.Payment, error) {
	payment := checkout.PaymentFromForm(form)
	payment.PlanID = plan.ID
	if s.processor == nil {
		return checkout.Receipt{}, payment, apperrors.E(apperrors.KindUnavailable, "payment processor is not configured")
	}
	receipt, err := s.processor.Process(ctx, payment)
	if err != nil {
		return checkout.Receipt{}, payment, err
	}
	return receipt, payment, nil
}

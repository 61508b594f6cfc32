package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Receipt confirms an approved checkout.
type Receipt struct {
	ConfirmationID string
	Plan           Plan
	Method         Method
	ApprovedAt     time.Time
}

// Processor charges a validated payment.
type Processor interface {
	Process(ctx context.Context, payment Payment) (Receipt, error)
}

// SimulatedProcessor approves every valid payment without charging anything.
type SimulatedProcessor struct {
	Now func() time.Time
}

// Process validates payment and returns an approved receipt.
func (p SimulatedProcessor) Process(ctx context.Context, payment Payment) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	approvedAt := now().UTC()
	if err := payment.Validate(approvedAt); err != nil {
		return Receipt{}, err
	}
	plan, ok := Lookup(payment.PlanID)
	if !ok {
		return Receipt{}, fmt.Errorf("unknown plan %q", payment.PlanID)
	}
	return Receipt{
		ConfirmationID: uuid.NewString(),
		Plan:           plan,
		Method:         payment.Method,
		ApprovedAt:     approvedAt,
	}, nil
}

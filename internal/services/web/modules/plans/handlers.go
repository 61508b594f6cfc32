package plans

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/golear/golear/internal/services/web/platform/errors"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/platform/weberror"
	checkout "github.com/golear/golear/internal/services/web/plans"
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

func (h handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	view := webtemplates.PlansView{Steps: steps(checkout.StepChoose, loc)}
	for _, plan := range checkout.Catalog() {
		view.Plans = append(view.Plans, planCard(plan, lang))
	}
	title := webtemplates.T(loc, "web.plans.title")
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title, Subtitle: webtemplates.T(loc, "web.plans.subtitle")}, webtemplates.PlansFragment(view, loc))
}

func (h handlers) handlePayment(w http.ResponseWriter, r *http.Request) {
	plan, ok := checkout.Lookup(r.PathValue("planID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	h.writeCheckout(w, r, http.StatusOK, plan, checkout.Payment{Method: checkout.MethodCard}, nil)
}

func (h handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	plan, ok := checkout.Lookup(r.PathValue("planID"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeCheckout(w, r, http.StatusBadRequest, plan, checkout.Payment{Method: checkout.MethodCard}, apperrors.EK(apperrors.KindInvalidInput, "error.web.invalid_form", "parse checkout form"))
		return
	}
	receipt, payment, err := h.service.checkout(r.Context(), plan, r.PostForm)
	if apperrors.KindOf(err) == apperrors.KindUnavailable {
		h.WriteError(w, r, err)
		return
	}
	if err != nil {
		h.writeCheckout(w, r, http.StatusUnprocessableEntity, plan, payment, err)
		return
	}
	slog.InfoContext(r.Context(), "checkout approved", "plan", receipt.Plan.ID, "method", string(receipt.Method), "confirmation_id", receipt.ConfirmationID)
	loc, lang := h.PageLocalizer(w, r)
	view := webtemplates.ConfirmationView{
		Steps:          steps(checkout.StepConfirmation, loc),
		Plan:           planCard(receipt.Plan, lang),
		Method:         methodLabel(receipt.Method, loc),
		ConfirmationID: receipt.ConfirmationID,
		ApprovedAt:     webi18n.FormatDateTime(receipt.ApprovedAt, lang),
		ContinueURL:    routepath.AppFeed,
	}
	title := webtemplates.T(loc, "web.plans.confirmation_title")
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title}, webtemplates.ConfirmationFragment(view, loc))
}

func (h handlers) writeCheckout(w http.ResponseWriter, r *http.Request, status int, plan checkout.Plan, payment checkout.Payment, err error) {
	loc, lang := h.PageLocalizer(w, r)
	view := webtemplates.CheckoutView{
		Steps:       steps(checkout.StepPayment, loc),
		Plan:        planCard(plan, lang),
		Methods:     methodOptions(payment.Method, loc),
		CardMethod:  payment.Method != checkout.MethodBoleto,
		Values:      paymentValues(payment),
		CheckoutURL: routepath.AppPlanCheckout(plan.ID),
		BackURL:     routepath.AppPlans,
	}
	var invalid *checkout.ValidationError
	switch {
	case errors.As(err, &invalid):
		view.Errors = localizedFieldErrors(loc, invalid.Fields)
	case err != nil:
		status = apperrors.HTTPStatus(err)
		view.Error = weberror.PublicMessage(loc, err)
	}
	title := webtemplates.T(loc, "web.plans.checkout_title")
	h.WritePage(w, r, title, status, &webtemplates.AppMainHeader{Title: title}, webtemplates.CheckoutFragment(view, loc))
}

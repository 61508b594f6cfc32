package plans

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
)

var checkoutNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func validCardPayment() Payment {
	return Payment{
		PlanID:     "profissional",
		Method:     MethodCard,
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Ana Souza",
		Expiry:     "06/26",
		CVV:        "123",
		TaxID:      "123.456.789-09",
		Email:      "ana@golear.com",
		Address:    "Rua A, 10, Recife",
		Phone:      "(81) 99999-0000",
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	plans := Catalog()
	if len(plans) != 3 {
		t.Fatalf("len(Catalog()) = %d, want 3", len(plans))
	}
	want := map[string]float64{"amador": 9.99, "profissional": 29.99, "craque": 49.99}
	for _, plan := range plans {
		if want[plan.ID] != plan.Price {
			t.Fatalf("%s price = %v, want %v", plan.ID, plan.Price, want[plan.ID])
		}
		if len(plan.Benefits) == 0 || plan.Description == "" {
			t.Fatalf("%s missing copy", plan.ID)
		}
	}
	plans[0].Benefits[0] = "mutated"
	if again, _ := Lookup("amador"); again.Benefits[0] == "mutated" {
		t.Fatal("Catalog() must return copies")
	}
	if _, ok := Lookup(" CRAQUE "); !ok {
		t.Fatal("Lookup should be case-insensitive")
	}
	if _, ok := Lookup("lendario"); ok {
		t.Fatal("Lookup(lendario) = true, want false")
	}
}

func TestLuhn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		number string
		want   bool
	}{
		{"4111111111111111", true},
		{"5500000000000004", true},
		{"4111111111111112", false},
		{"", false},
		{"41111a1111111111", false},
	}
	for _, tc := range tests {
		if got := Luhn(tc.number); got != tc.want {
			t.Fatalf("Luhn(%q) = %v, want %v", tc.number, got, tc.want)
		}
	}
}

func TestValidateAcceptsValidPayments(t *testing.T) {
	t.Parallel()

	if err := validCardPayment().Validate(checkoutNow); err != nil {
		t.Fatalf("card Validate() error = %v", err)
	}
	boleto := Payment{
		PlanID:  "amador",
		Method:  MethodBoleto,
		TaxID:   "12.345.678/0001-90",
		Email:   "clube@golear.com",
		Address: "Av. B, 200",
		Phone:   "81 3333-0000",
	}
	if err := boleto.Validate(checkoutNow); err != nil {
		t.Fatalf("boleto Validate() error = %v", err)
	}
}

func TestValidateReportsFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Payment)
		field  string
	}{
		{name: "unknown plan", mutate: func(p *Payment) { p.PlanID = "x" }, field: "plano"},
		{name: "missing method", mutate: func(p *Payment) { p.Method = "" }, field: "formaPagamento"},
		{name: "short card", mutate: func(p *Payment) { p.CardNumber = "4111 1111 111" }, field: "numeroCartao"},
		{name: "long card", mutate: func(p *Payment) { p.CardNumber = "41111111111111111111" }, field: "numeroCartao"},
		{name: "luhn failure", mutate: func(p *Payment) { p.CardNumber = "4111111111111112" }, field: "numeroCartao"},
		{name: "letters in card", mutate: func(p *Payment) { p.CardNumber = "4111x11111111111" }, field: "numeroCartao"},
		{name: "blank card name", mutate: func(p *Payment) { p.CardName = " " }, field: "nomeCartao"},
		{name: "expired card", mutate: func(p *Payment) { p.Expiry = "05/26" }, field: "validade"},
		{name: "bad expiry month", mutate: func(p *Payment) { p.Expiry = "13/30" }, field: "validade"},
		{name: "bad expiry format", mutate: func(p *Payment) { p.Expiry = "6/2030" }, field: "validade"},
		{name: "short cvv", mutate: func(p *Payment) { p.CVV = "12" }, field: "cvv"},
		{name: "long cvv", mutate: func(p *Payment) { p.CVV = "12345" }, field: "cvv"},
		{name: "cpf length", mutate: func(p *Payment) { p.TaxID = "123.456.789-0" }, field: "cpfCnpj"},
		{name: "twelve digit tax id", mutate: func(p *Payment) { p.TaxID = "123456789012" }, field: "cpfCnpj"},
		{name: "missing email", mutate: func(p *Payment) { p.Email = "" }, field: "emailNota"},
		{name: "missing address", mutate: func(p *Payment) { p.Address = "" }, field: "endereco"},
		{name: "missing phone", mutate: func(p *Payment) { p.Phone = "" }, field: "telefone"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			payment := validCardPayment()
			tc.mutate(&payment)
			err := payment.Validate(checkoutNow)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("fields = %v, want %q", verr.Fields, tc.field)
			}
		})
	}
}

func TestBoletoSkipsCardFields(t *testing.T) {
	t.Parallel()

	payment := validCardPayment()
	payment.Method = MethodBoleto
	payment.CardNumber = ""
	payment.CVV = ""
	payment.Expiry = ""
	if err := payment.Validate(checkoutNow); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestPaymentFromForm(t *testing.T) {
	t.Parallel()

	payment := PaymentFromForm(url.Values{
		"plano":          {"craque"},
		"formaPagamento": {"Boleto"},
		"cpfCnpj":        {" 12345678901 "},
	})
	if payment.PlanID != "craque" || payment.Method != MethodBoleto || payment.TaxID != "12345678901" {
		t.Fatalf("payment = %+v", payment)
	}
}

func TestSimulatedProcessorApproves(t *testing.T) {
	t.Parallel()

	processor := SimulatedProcessor{Now: func() time.Time { return checkoutNow }}
	receipt, err := processor.Process(context.Background(), validCardPayment())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if receipt.Plan.ID != "profissional" || receipt.Method != MethodCard {
		t.Fatalf("receipt = %+v", receipt)
	}
	if _, err := uuid.Parse(receipt.ConfirmationID); err != nil {
		t.Fatalf("confirmation id %q is not a uuid: %v", receipt.ConfirmationID, err)
	}
	if !receipt.ApprovedAt.Equal(checkoutNow) {
		t.Fatalf("ApprovedAt = %v, want %v", receipt.ApprovedAt, checkoutNow)
	}
}

func TestSimulatedProcessorRejectsInvalid(t *testing.T) {
	t.Parallel()

	payment := validCardPayment()
	payment.CVV = ""
	if _, err := (SimulatedProcessor{}).Process(context.Background(), payment); err == nil {
		t.Fatal("expected validation error")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (SimulatedProcessor{}).Process(ctx, validCardPayment()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Process() error = %v, want context.Canceled", err)
	}
}

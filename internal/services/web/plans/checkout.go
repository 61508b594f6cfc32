package plans

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Method is a payment method.
type Method string

const (
	MethodCard   Method = "cartao"
	MethodBoleto Method = "boleto"
)

// ParseMethod matches raw against the supported methods.
func ParseMethod(raw string) (Method, bool) {
	switch Method(strings.ToLower(strings.TrimSpace(raw))) {
	case MethodCard:
		return MethodCard, true
	case MethodBoleto:
		return MethodBoleto, true
	default:
		return "", false
	}
}

// Payment is the submitted checkout form.
type Payment struct {
	PlanID     string
	Method     Method
	CardNumber string
	CardName   string
	Expiry     string
	CVV        string
	TaxID      string
	Email      string
	Address    string
	Phone      string
}

// PaymentFromForm reads a Payment from the checkout form fields.
func PaymentFromForm(form url.Values) Payment {
	get := func(key string) string { return strings.TrimSpace(form.Get(key)) }
	method, _ := ParseMethod(get("formaPagamento"))
	return Payment{
		PlanID:     get("plano"),
		Method:     method,
		CardNumber: get("numeroCartao"),
		CardName:   get("nomeCartao"),
		Expiry:     get("validade"),
		CVV:        get("cvv"),
		TaxID:      get("cpfCnpj"),
		Email:      get("emailNota"),
		Address:    get("endereco"),
		Phone:      get("telefone"),
	}
}

// ValidationError maps form fields to catalog message keys.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid checkout fields: %s", strings.Join(names, ", "))
}

// Validate checks p against the rules of its payment method at now.
func (p Payment) Validate(now time.Time) error {
	fields := map[string]string{}
	if _, ok := Lookup(p.PlanID); !ok {
		fields["plano"] = "plans.error.plan"
	}
	switch p.Method {
	case MethodCard:
		if !validCardNumber(p.CardNumber) {
			fields["numeroCartao"] = "plans.error.card_number"
		}
		if strings.TrimSpace(p.CardName) == "" {
			fields["nomeCartao"] = "plans.error.card_name"
		}
		if !validExpiry(p.Expiry, now) {
			fields["validade"] = "plans.error.expiry"
		}
		if cvv := digits(p.CVV); len(cvv) < 3 || len(cvv) > 4 || cvv != strings.TrimSpace(p.CVV) {
			fields["cvv"] = "plans.error.cvv"
		}
	case MethodBoleto:
	default:
		fields["formaPagamento"] = "plans.error.method"
	}
	if taxID := digits(p.TaxID); len(taxID) != 11 && len(taxID) != 14 {
		fields["cpfCnpj"] = "plans.error.tax_id"
	}
	if email := strings.TrimSpace(p.Email); email == "" || !strings.Contains(email, "@") {
		fields["emailNota"] = "plans.error.email"
	}
	if strings.TrimSpace(p.Address) == "" {
		fields["endereco"] = "plans.error.address"
	}
	if strings.TrimSpace(p.Phone) == "" {
		fields["telefone"] = "plans.error.phone"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// digits drops every non-digit, so formatted input like 000.000.000-00 works.
func digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validCardNumber(raw string) bool {
	for _, r := range raw {
		if !unicode.IsDigit(r) && r != ' ' && r != '-' {
			return false
		}
	}
	number := digits(raw)
	if len(number) < 13 || len(number) > 19 {
		return false
	}
	return Luhn(number)
}

// Luhn reports whether number passes the Luhn checksum. number must hold
// only ASCII digits.
func Luhn(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validExpiry accepts MM/AA cards that are valid through the end of that
// month.
func validExpiry(raw string, now time.Time) bool {
	month, year, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok || len(month) != 2 || len(year) != 2 {
		return false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	firstOfNext := time.Date(2000+y, time.Month(m)+1, 1, 0, 0, 0, 0, time.UTC)
	return now.UTC().Before(firstOfNext)
}

package checkout

import (
	"sort"
	"strings"

	"github.com/RekhaKadam/sonna-s-cafe/models"
)

// Details is the customer-entered checkout form.
type Details struct {
	Name           string                `json:"name"`
	Phone          string                `json:"phone"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	Address        string                `json:"address,omitempty"`
}

// FieldErrors maps a form field to its inline validation message. It is
// an error so handlers can surface it next to the offending field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return strings.Join(parts, "; ")
}

// NormalizePhone strips every non-digit character.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateDetails checks the checkout form: name present, phone exactly
// 10 digits after stripping separators, address present when delivery is
// chosen. A nil return means the form passed.
func ValidateDetails(d Details) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}

	phone := NormalizePhone(d.Phone)
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(phone) != 10 {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}

	switch d.DeliveryMethod {
	case models.DeliveryDineIn, models.DeliveryPickup:
	case models.DeliveryDelivery:
		if strings.TrimSpace(d.Address) == "" {
			errs["address"] = "Address is required for delivery"
		}
	default:
		errs["delivery_method"] = "Please choose dine-in, pickup or delivery"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

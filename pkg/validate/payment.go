package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/ShiraazMoollatjie/goluhn"
)

var (
	ErrUnknownMethod = errors.New("unknown payment method")
	ErrMissingField  = errors.New("missing payment detail")
	ErrMalformed     = errors.New("malformed payment detail")
)

var requiredFields = map[string][]string{
	"paypal":        {"email"},
	"bank_transfer": {"account_name", "account_number", "bank_name"},
	"crypto":        {"address"},
	"card":          {"number"},
}

// PaymentDetails checks that details carry every field the method needs and that the
// fields with a known shape are well formed.
func PaymentDetails(method string, details map[string]string) error {
	fields, ok := requiredFields[method]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	for _, f := range fields {
		if strings.TrimSpace(details[f]) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	switch method {
	case "paypal":
		if _, err := mail.ParseAddress(details["email"]); err != nil {
			return fmt.Errorf("%w: email", ErrMalformed)
		}
	case "bank_transfer":
		if !digitsOnly(details["account_number"]) {
			return fmt.Errorf("%w: account_number", ErrMalformed)
		}
	case "crypto":
		if len(details["address"]) < 26 || strings.ContainsAny(details["address"], " \t") {
			return fmt.Errorf("%w: address", ErrMalformed)
		}
	case "card":
		if !CardNumber(details["number"]) {
			return fmt.Errorf("%w: number", ErrMalformed)
		}
	}
	return nil
}

// CardNumber reports whether s passes the Luhn check once spaces and dashes are dropped.
func CardNumber(s string) bool {
	return goluhn.Validate(stripSeparators(s)) == nil
}

func stripSeparators(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

func digitsOnly(s string) bool {
	s = stripSeparators(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Package validation holds the pure field validators used at entity
// construction time.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	phoneMinExclusive = 7
	phoneMax          = 15
)

// PhoneNumber accepts strings of 8 to 15 ASCII digits. The lower bound is
// exclusive of 7: a 7-digit number is rejected.
func PhoneNumber(s string) error {
	if len(s) <= phoneMinExclusive || len(s) > phoneMax {
		return fmt.Errorf("phone number %q must be 8-15 digits", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("phone number %q must contain only digits", s)
		}
	}
	return nil
}

// Email accepts strings matching a standard email address grammar.
func Email(s string) error {
	if err := validate.Var(s, "required,email"); err != nil {
		return fmt.Errorf("invalid email address %q", s)
	}
	return nil
}

// Package validator registers the registration form rules on gin's validator engine.
package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	minPhoneDigits = 10
	idCardDigits   = 13
	maxAge         = 150
)

var genders = map[string]bool{"male": true, "female": true, "other": true}

var maritalStatuses = map[string]bool{"single": true, "married": true, "divorced": true, "widowed": true}

// Register installs the custom tags on gin's default validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom tags on v and reports field names by their json tag.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	rules := map[string]validator.Func{
		"positive-age":      validatePositiveAge,
		"is-gender":         validateGender,
		"is-marital-status": validateMaritalStatus,
		"phone-digits":      validatePhone,
		"id-card-digits":    validateIDCard,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// Digits strips everything but ASCII digits, so "081-234-5678" becomes "0812345678".
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// separatorDigits drops phone/ID formatting characters and reports false when
// anything other than a digit is left.
func separatorDigits(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '+':
		default:
			return "", false
		}
	}
	return b.String(), true
}

// ParseAge accepts a number from 1 to 150; fractions are truncated.
func ParseAge(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 || f > maxAge {
		return 0, false
	}
	return int(f), true
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validatePositiveAge(fl validator.FieldLevel) bool {
	_, ok := ParseAge(fl.Field().String())
	return ok
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // required handles empties
	}
	return genders[strings.ToLower(value)]
}

func validateMaritalStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return maritalStatuses[strings.ToLower(value)]
}

func validatePhone(fl validator.FieldLevel) bool {
	d, ok := separatorDigits(fl.Field().String())
	return ok && len(d) >= minPhoneDigits
}

func validateIDCard(fl validator.FieldLevel) bool {
	d, ok := separatorDigits(fl.Field().String())
	return ok && len(d) == idCardDigits
}

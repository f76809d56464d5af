package bankdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/moneypkg"
)

// ValidAccountType validates whether the account type is supported.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	if code, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseAccountType(code)
		return err == nil
	}

	return false
}

// ValidAmount validates whether the amount is a decimal number.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if amount, ok := fl.Field().Interface().(string); ok {
		_, err := moneypkg.Parse(amount)
		return err == nil
	}

	return false
}

// RegisterValidations registers the custom validation tags used by bank requests.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("accounttype", ValidAccountType); err != nil {
		return err
	}

	return v.RegisterValidation("amount", ValidAmount)
}

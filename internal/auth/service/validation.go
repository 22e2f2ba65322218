package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type registerPayload struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type loginPayload struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// validateRegister keeps the original precedence: presence of all
// three fields first, then the password length floor.
func validateRegister(username, email, password string) error {
	err := validate.Struct(registerPayload{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ErrAllFieldsRequired
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrAllFieldsRequired
		}
	}
	return ErrPasswordTooShort
}

func validateLogin(email, password string) error {
	if err := validate.Struct(loginPayload{Email: email, Password: password}); err != nil {
		return ErrEmailPasswordRequired
	}
	return nil
}

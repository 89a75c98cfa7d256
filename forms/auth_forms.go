package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegistrationForm backs the fixed registration endpoint.
type RegistrationForm struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

func (f *RegistrationForm) Validate() Errors {
	errs := asErrors(validation.ValidateStruct(f,
		validation.Field(&f.Username, validation.Required,
			validation.Match(usernamePattern).Error("must start with a letter and contain only letters, digits and underscores (3-20 characters)")),
		validation.Field(&f.Email, validation.Required, is.EmailFormat),
		validation.Field(&f.Password1, validation.Required, validation.Length(6, 128)),
		validation.Field(&f.Password2, validation.Required),
	))
	if errs == nil && f.Password1 != f.Password2 {
		errs = Errors{"password2": "passwords do not match"}
	}
	return errs
}

// LoginForm backs the login page.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f *LoginForm) Validate() Errors {
	return asErrors(validation.ValidateStruct(f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	))
}

package forms

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/blogicum/blogicum/models"
)

// usernamePattern: starts with a letter, then letters, digits or
// underscore, 3-20 characters total.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,19}$`)

// UserForm validates self-service profile edits.
type UserForm struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (f *UserForm) Validate() Errors {
	return asErrors(validation.ValidateStruct(f,
		validation.Field(&f.Username, validation.Required,
			validation.Match(usernamePattern).Error("must start with a letter and contain only letters, digits and underscores (3-20 characters)")),
		validation.Field(&f.Email, validation.Required, is.EmailFormat),
		validation.Field(&f.FirstName, validation.Length(0, 150)),
		validation.Field(&f.LastName, validation.Length(0, 150)),
	))
}

func (f *UserForm) Apply(u *models.User) {
	u.Username = f.Username
	u.Email = f.Email
	u.FirstName = f.FirstName
	u.LastName = f.LastName
}

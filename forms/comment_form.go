package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/blogicum/blogicum/models"
)

// CommentForm accepts only the comment text.
type CommentForm struct {
	Text string `json:"text"`
}

func (f *CommentForm) Validate() Errors {
	return asErrors(validation.ValidateStruct(f,
		validation.Field(&f.Text, validation.Required),
	))
}

func (f *CommentForm) Apply(c *models.Comment) {
	c.Text = f.Text
}

// Package forms holds the input-validation adapters sitting between raw
// request fields and entity mutations. Each form either passes
// validation and can be applied to a model, or reports per-field
// messages for the template to render inline.
package forms

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Errors maps a form field to its validation message.
type Errors map[string]string

func (e Errors) Has(field string) bool { return e[field] != "" }

// asErrors flattens an ozzo validation result into template-friendly
// field messages.
func asErrors(err error) Errors {
	if err == nil {
		return nil
	}
	out := Errors{}
	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
		return out
	}
	out["__all__"] = err.Error()
	return out
}

var dateLayouts = []string{"2006-01-02T15:04", "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// checkDate is the ozzo rule behind the pub_date field.
func checkDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := parseDate(s); err != nil {
		return validation.NewError("validation_date", "must be a date in YYYY-MM-DD form")
	}
	return nil
}

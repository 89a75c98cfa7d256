package forms

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/blogicum/blogicum/models"
)

// PostForm validates post create/edit input. Authorization is the
// caller's job; the form only checks field values.
type PostForm struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	PubDate    string `json:"pub_date"`
	CategoryID string `json:"category"`
	LocationID string `json:"location"`
	// ImageName is set by the controller once the upload is stored.
	ImageName string `json:"-"`
}

func (f *PostForm) Validate() Errors {
	return asErrors(validation.ValidateStruct(f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&f.Text, validation.Required),
		validation.Field(&f.PubDate, validation.Required, validation.By(checkDate)),
		validation.Field(&f.CategoryID, is.Digit),
		validation.Field(&f.LocationID, is.Digit),
	))
}

// Apply copies the validated values onto the post. Call only after
// Validate returned no errors.
func (f *PostForm) Apply(p *models.Post) {
	p.Title = f.Title
	p.Text = f.Text
	if t, err := parseDate(f.PubDate); err == nil {
		p.PubDate = t
	}
	p.CategoryID = optionalID(f.CategoryID)
	p.Category = nil
	p.LocationID = optionalID(f.LocationID)
	p.Location = nil
	if f.ImageName != "" {
		p.Image = f.ImageName
	}
}

// Date returns the parsed publication date. Zero when the field did
// not validate.
func (f *PostForm) Date() time.Time {
	t, _ := parseDate(f.PubDate)
	return t
}

// Category returns the selected category id, nil for none.
func (f *PostForm) Category() *uint { return optionalID(f.CategoryID) }

// Location returns the selected location id, nil for none.
func (f *PostForm) Location() *uint { return optionalID(f.LocationID) }

func optionalID(value string) *uint {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	uid := uint(id)
	return &uid
}

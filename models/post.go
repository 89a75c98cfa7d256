package models

import (
	"time"
)

// Post is an authored publication. Category and location are optional
// and survive the post when deleted; the author does not (deleting a
// user removes their posts).
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"size:256;not null"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	PubDate    time.Time `json:"pub_date" gorm:"not null;index"`
	Image      string    `json:"image" gorm:"size:512"`
	AuthorID   uint      `json:"author_id" gorm:"not null;index"`
	Author     User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CategoryID *uint     `json:"category_id" gorm:"index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	LocationID *uint     `json:"location_id" gorm:"index"`
	Location   *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	Published
	WithCreated
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (p *Post) OwnerID() uint { return p.AuthorID }

// PubliclyVisible reports whether the post is shown to viewers other
// than its author: published, in a published (or no) category, and not
// scheduled for the future. Requires Category to be loaded when set.
func (p *Post) PubliclyVisible(now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID != nil && p.Category != nil && !p.Category.IsPublished {
		return false
	}
	return true
}

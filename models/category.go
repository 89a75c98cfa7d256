package models

import (
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/utils"
)

type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"size:256;not null"`
	Description string `json:"description" gorm:"type:text"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:64;not null"`
	Published
	WithCreated
	Posts []Post `json:"-" gorm:"foreignKey:CategoryID"`
}

// BeforeSave derives the slug from the title when none was given and
// normalizes whatever was given to the URL-safe alphabet.
func (cat *Category) BeforeSave(tx *gorm.DB) error {
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(cat.Title)
	} else {
		cat.Slug = utils.Slugify(cat.Slug)
	}
	return nil
}

// AfterDelete clears the category reference on dependent posts; the
// posts themselves survive.
func (cat *Category) AfterDelete(tx *gorm.DB) error {
	return tx.Model(&Post{}).Where("category_id = ?", cat.ID).
		Update("category_id", nil).Error
}

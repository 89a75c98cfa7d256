package models

import (
	"gorm.io/gorm"
)

type Location struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:256;not null"`
	Published
	WithCreated
	Posts []Post `json:"-" gorm:"foreignKey:LocationID"`
}

// AfterDelete clears the location reference on dependent posts.
func (loc *Location) AfterDelete(tx *gorm.DB) error {
	return tx.Model(&Post{}).Where("location_id = ?", loc.ID).
		Update("location_id", nil).Error
}

package models

type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Text     string `json:"text" gorm:"type:text;not null"`
	AuthorID uint   `json:"author_id" gorm:"not null;index"`
	Author   User   `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PostID   uint   `json:"post_id" gorm:"not null;index"`
	Post     Post   `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	WithCreated
}

func (c *Comment) OwnerID() uint { return c.AuthorID }

package models

import (
	"time"
)

// Published is the shared publication flag. Entities embedding it are
// hidden from public listings when the flag is cleared. No column
// default on purpose: a zero value next to a default would be dropped
// from inserts, silently publishing rows meant to stay hidden.
type Published struct {
	IsPublished bool `json:"is_published" gorm:"not null"`
}

// WithCreated adds the shared creation timestamp.
type WithCreated struct {
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

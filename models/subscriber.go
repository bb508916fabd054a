package models

import "time"

// Subscriber is a newsletter signup. Email uniqueness is checked at the
// application layer before insert; the index is a backstop.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

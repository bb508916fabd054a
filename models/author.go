package models

import "time"

// Author is a writer profile referenced by posts.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Avatar    string    `gorm:"size:1024;not null" json:"avatar"`
	Bio       string    `gorm:"type:text;not null" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No FK constraint on purpose: deleting an author keeps their posts,
	// which then render with an empty author until reassigned.
	Posts []Post `gorm:"constraint:-" json:"-"`
}

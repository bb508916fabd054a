package models

import "time"

// Category groups posts by destination or topic. Count is computed at read
// time from the join table and never stored.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;index" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:1024" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Count       int64     `gorm:"-" json:"count"`
	Posts       []Post    `gorm:"many2many:post_categories;" json:"-"`
}

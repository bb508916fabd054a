package models

import "time"

// Post is a published travel story. Content is stored as sanitized HTML.
type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Slug       string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Excerpt    string     `gorm:"type:text;not null" json:"excerpt"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CoverImage string     `gorm:"size:1024;not null" json:"cover_image"`
	AuthorID   uint       `gorm:"index;not null" json:"author_id"`
	Featured   bool       `gorm:"default:false" json:"featured"`
	Published  bool       `gorm:"default:true" json:"published"`
	ReadTime   int        `gorm:"default:5" json:"read_time"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Author     Author     `gorm:"constraint:-" json:"author"`
	Categories []Category `gorm:"many2many:post_categories;" json:"categories"`
}

package models

import "time"

// UploadedFile is a ledger row for every file written to the uploads
// directory, keeping the original name and type around for the admin UI.
type UploadedFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255" json:"originalname"`
	MimeType     string    `gorm:"size:128" json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `gorm:"size:1024;not null" json:"path"` // public URL like /uploads/...
	CreatedAt    time.Time `json:"created_at"`
}

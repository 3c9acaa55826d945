// internal/domain/upload/entity.go
package upload

import "time"

// UploadedFile represents a stored product image
type UploadedFile struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OriginalName string    `gorm:"not null;size:255" json:"original_name"`
	StoredName   string    `gorm:"uniqueIndex;not null;size:255" json:"stored_name"`
	URL          string    `gorm:"not null;size:500" json:"url"`
	Size         int64     `gorm:"not null" json:"size"`
	Extension    string    `gorm:"size:20" json:"extension"`
	UploadedBy   string    `gorm:"index;size:36" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

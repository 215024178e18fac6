package models

import "time"

// GallerySection groups gallery images under a named heading
type GallerySection struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Images []*GalleryImage `json:"images"`
}

// GalleryImage is a single stored image inside a section
type GalleryImage struct {
	ID         int64     `json:"id" db:"id"`
	SectionID  int64     `json:"sectionId" db:"section_id"`
	URL        string    `json:"url" db:"url"`
	Caption    *string   `json:"caption,omitempty" db:"caption"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}

package models

import "time"

// SuccessStory is an alumni story shown on the public site
type SuccessStory struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Batch     *string   `json:"batch,omitempty" db:"batch"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	Excerpt   *string   `json:"excerpt,omitempty" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

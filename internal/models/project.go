package models

import "time"

// Project is a single portfolio entry.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"` // hosted URL or local /uploads/ path
	Tags        []string  `json:"tags"`            // decoded from JSON text column; [] when absent
	Link        string    `json:"link,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

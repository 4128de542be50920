package domain

import "time"

// ContactMessage is a note left through the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	Seating    string    `json:"seating"`
	Newsletter bool      `json:"newsletter"`
	CreatedAt  time.Time `json:"createdAt"`
}

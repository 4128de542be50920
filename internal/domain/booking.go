package domain

import "time"

// Booking is a submitted table reservation echoed back to the guest.
type Booking struct {
	ID               string    `json:"id"`
	ConfirmationCode string    `json:"confirmationCode"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	PartySize        int       `json:"partySize"`
	Occasion         string    `json:"occasion"`
	SpecialRequests  string    `json:"specialRequests,omitempty"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

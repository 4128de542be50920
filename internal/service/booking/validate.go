package booking

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"littlelemon/internal/availability"
	"littlelemon/internal/domain"
)

const (
	minNameLength = 3
	minPartySize  = 1
	maxPartySize  = 10
)

var emailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)

var occasions = map[string]bool{
	"birthday":     true,
	"anniversary":  true,
	"date-night":   true,
	"just-because": true,
}

// Request is the reservation form as submitted by a guest.
type Request struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"partySize"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

func (r Request) normalized() Request {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Occasion = strings.TrimSpace(r.Occasion)
	r.SpecialRequests = strings.TrimSpace(r.SpecialRequests)
	return r
}

// Validate checks r against the reservation rules. today is formatted YYYY-MM-DD.
func Validate(r Request, today string) error {
	r = r.normalized()
	verr := domain.NewValidationError()

	switch {
	case r.FullName == "":
		verr.Add("fullName", "Please enter your name.")
	case utf8.RuneCountInString(r.FullName) < minNameLength:
		verr.Add("fullName", "Name should be at least three characters.")
	}

	switch {
	case r.Email == "":
		verr.Add("email", "An email helps us share updates.")
	case !emailPattern.MatchString(r.Email):
		verr.Add("email", "Enter a valid email address.")
	}

	var date time.Time
	dateOK := false
	if r.Date == "" {
		verr.Add("date", "Select a date for your reservation.")
	} else if d, err := availability.ParseDate(r.Date); err != nil {
		verr.Add("date", "Enter the date as YYYY-MM-DD.")
	} else if r.Date < today {
		verr.Add("date", "Choose today or a later date.")
	} else {
		date, dateOK = d, true
	}

	switch {
	case r.Time == "":
		verr.Add("time", "Pick an available time slot.")
	case dateOK && !availability.IsAvailable(date, r.Time):
		verr.Add("time", "Pick an available time slot.")
	}

	switch {
	case r.PartySize == 0:
		verr.Add("partySize", "Let us know how many seats to prepare.")
	case r.PartySize < minPartySize:
		verr.Add("partySize", "A reservation must include at least one guest.")
	case r.PartySize > maxPartySize:
		verr.Add("partySize", "For parties larger than ten, please call the restaurant.")
	}

	if !occasions[r.Occasion] {
		verr.Add("occasion", "Tell us what we are celebrating.")
	}

	return verr.OrNil()
}

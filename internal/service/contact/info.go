package contact

type Method struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
	Hint  string `json:"hint"`
}

type Hours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type Info struct {
	Methods []Method `json:"methods"`
	Hours   []Hours  `json:"hours"`
	Address []string `json:"address"`
}

// Info returns the restaurant's contact details and dining hours.
func (s *Service) Info() Info {
	return Info{
		Methods: []Method{
			{ID: "phone", Label: "Call us", Value: "(312) 555-0180", Href: "tel:3125550180", Hint: "Daily between 2:00pm and close"},
			{ID: "email", Label: "Email", Value: "hello@littlelemon.com", Href: "mailto:hello@littlelemon.com", Hint: "We reply within one business day"},
		},
		Hours: []Hours{
			{Days: "Monday - Thursday", Hours: "4:00pm - 10:00pm"},
			{Days: "Friday", Hours: "4:00pm - 11:00pm"},
			{Days: "Saturday", Hours: "12:00pm - 11:00pm"},
			{Days: "Sunday", Hours: "12:00pm - 9:00pm"},
		},
		Address: []string{"123 Lemon Lane", "Chicago, IL 60611"},
	}
}

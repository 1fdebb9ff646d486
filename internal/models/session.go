package models

import "time"

// DateLayout is the partition key format the remote sheet uses for a session date.
const DateLayout = "20060102"

type Session struct {
	Key             string `json:"key" validate:"required"`
	Date            string `json:"date" validate:"required,len=8,numeric"`
	Time            string `json:"time"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	Capacity        int    `json:"capacity" validate:"gt=0"`
	TrainingEnabled bool   `json:"training_enabled"`
	TrainingQuota   int    `json:"training_quota" validate:"gte=0"`
	HandRequired    bool   `json:"hand_required"`
	WaiverRequired  bool   `json:"waiver_required"`
}

// FormattedDate renders the partition key as "Monday, April 28, 2025".
// An unparseable date is returned unchanged.
func (s Session) FormattedDate() string {
	d, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return s.Date
	}

	return d.Format("Monday, January 2, 2006")
}

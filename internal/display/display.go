// Package display turns a session, its roster and a device's ownership set
// into the state the widget shows. Nothing here performs I/O.
package display

import (
	"fmt"

	"eventSignup/internal/form"
	"eventSignup/internal/models"
	"eventSignup/internal/ownership"
)

type View struct {
	Key            string    `json:"key"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	FormattedDate  string    `json:"formatted_date"`
	Time           string    `json:"time"`
	Location       string    `json:"location"`
	Loaded         bool      `json:"loaded"`
	Capacity       int       `json:"capacity"`
	RemainingSlots int       `json:"remaining_slots"`
	Training       *Training `json:"training,omitempty"`
	Entries        []Entry   `json:"entries"`
	Form           Form      `json:"form"`
}

type Training struct {
	Quota     int    `json:"quota"`
	Remaining int    `json:"remaining"`
	Label     string `json:"label"`
}

type Entry struct {
	Name      string `json:"name"`
	Hand      string `json:"hand,omitempty"`
	Training  bool   `json:"training"`
	Label     string `json:"label"`
	Removable bool   `json:"removable"`
}

type Form struct {
	Name           string `json:"name"`
	Hand           string `json:"hand"`
	Training       bool   `json:"training"`
	Waiver         bool   `json:"waiver"`
	HandRequired   bool   `json:"hand_required"`
	WaiverRequired bool   `json:"waiver_required"`
	TrainingOption bool   `json:"training_option"`
	Valid          bool   `json:"valid"`
	SubmitEnabled  bool   `json:"submit_enabled"`
}

func Requirements(s models.Session) form.Requirements {
	return form.Requirements{
		HandRequired:   s.HandRequired,
		WaiverRequired: s.WaiverRequired,
	}
}

// RemainingSlots is capacity minus roster size, never below zero.
func RemainingSlots(s models.Session, roster []models.Registrant) int {
	return max(0, s.Capacity-len(roster))
}

// RemainingTraining is the training quota minus training signups, never below zero.
func RemainingTraining(s models.Session, roster []models.Registrant) int {
	if !s.TrainingEnabled {
		return 0
	}
	return max(0, s.TrainingQuota-models.CountTraining(roster))
}

// Render builds the view. When loaded is false the roster is unknown and
// the view shows a loading state with submission disabled.
func Render(s models.Session, roster []models.Registrant, loaded bool, owned ownership.Names, in form.Input) View {
	v := View{
		Key:           s.Key,
		Title:         s.Title,
		Date:          s.Date,
		FormattedDate: s.FormattedDate(),
		Time:          s.Time,
		Location:      s.Location,
		Loaded:        loaded,
		Capacity:      s.Capacity,
		Entries:       []Entry{},
	}

	req := Requirements(s)
	valid := form.Valid(in, req)

	v.Form = Form{
		Name:           in.Name,
		Hand:           in.Hand,
		Waiver:         in.Waiver,
		HandRequired:   req.HandRequired,
		WaiverRequired: req.WaiverRequired,
		Valid:          valid,
	}

	if !loaded {
		return v
	}

	v.RemainingSlots = RemainingSlots(s, roster)

	if s.TrainingEnabled {
		remaining := RemainingTraining(s, roster)
		v.Training = &Training{
			Quota:     s.TrainingQuota,
			Remaining: remaining,
			Label:     fmt.Sprintf("1v1 Training Slots Available: %d out of %d", remaining, s.TrainingQuota),
		}
		v.Form.TrainingOption = remaining > 0
		v.Form.Training = in.Training && remaining > 0
	}

	for _, r := range roster {
		v.Entries = append(v.Entries, Entry{
			Name:      r.Name,
			Hand:      r.Hand,
			Training:  bool(r.Training),
			Label:     label(r),
			Removable: owned.Contains(r.Name),
		})
	}

	v.Form.SubmitEnabled = valid && v.RemainingSlots > 0

	return v
}

func label(r models.Registrant) string {
	text := r.Name
	if r.Hand != "" {
		text = fmt.Sprintf("%s (%s)", r.Name, r.Hand)
	}
	if r.Training {
		text += " [1v1]"
	}
	return text
}

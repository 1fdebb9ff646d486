package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	TrainingYes = "Yes"
	TrainingNo  = "No"
)

type Registrant struct {
	Name     string       `json:"name"`
	Hand     string       `json:"hand,omitempty"`
	Training TrainingFlag `json:"training"`
}

// TrainingFlag is the sheet's "Yes"/"No" column. Booleans are accepted as well.
type TrainingFlag bool

func (f TrainingFlag) String() string {
	if f {
		return TrainingYes
	}
	return TrainingNo
}

func (f TrainingFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *TrainingFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = TrainingFlag(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("training flag: %w", err)
	}

	*f = TrainingFlag(strings.EqualFold(strings.TrimSpace(s), TrainingYes))

	return nil
}

// SignupRequest is what the gateway sends for an add.
type SignupRequest struct {
	Name     string
	Hand     string
	Training bool
}

// CountTraining returns how many registrants opted into training.
func CountTraining(roster []Registrant) int {
	n := 0
	for _, r := range roster {
		if r.Training {
			n++
		}
	}
	return n
}

// ContainsName reports whether the roster holds a registrant with the given name.
func ContainsName(roster []Registrant, name string) bool {
	for _, r := range roster {
		if r.Name == name {
			return true
		}
	}
	return false
}

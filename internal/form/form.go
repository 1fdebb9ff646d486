// Package form decides whether the signup form is complete enough to submit.
package form

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNameRequired   = errors.New("please enter your name")
	ErrHandRequired   = errors.New("please select your dominant hand")
	ErrWaiverRequired = errors.New("please accept the waiver")
)

var validate = validator.New()

// Input is the raw state of the signup form.
type Input struct {
	Name     string `json:"name"`
	Hand     string `json:"hand"`
	Training bool   `json:"training"`
	Waiver   bool   `json:"waiver"`
}

// Requirements lists which optional controls the session's form shows.
type Requirements struct {
	HandRequired   bool
	WaiverRequired bool
}

type check struct {
	HandRequired   bool
	WaiverRequired bool
	Name           string `validate:"required"`
	Hand           string `validate:"required_if=HandRequired true"`
	Waiver         bool   `validate:"required_if=WaiverRequired true"`
}

// Normalize trims the free-text fields.
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Hand = strings.TrimSpace(in.Hand)
	return in
}

// Validate returns the first missing requirement, in form order.
// Training never affects validity.
func Validate(in Input, req Requirements) error {
	in = in.Normalize()

	err := validate.Struct(check{
		HandRequired:   req.HandRequired,
		WaiverRequired: req.WaiverRequired,
		Name:           in.Name,
		Hand:           in.Hand,
		Waiver:         in.Waiver,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].Field() {
	case "Name":
		return ErrNameRequired
	case "Hand":
		return ErrHandRequired
	default:
		return ErrWaiverRequired
	}
}

func Valid(in Input, req Requirements) bool {
	return Validate(in, req) == nil
}

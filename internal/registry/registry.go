// Package registry holds the static, validated set of sessions the board displays.
package registry

import (
	"errors"
	"fmt"
	"time"

	"eventSignup/internal/config"
	"eventSignup/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoSessions     = errors.New("no sessions configured")
	ErrDuplicateKey   = errors.New("duplicate session key")
	ErrDuplicateDate  = errors.New("duplicate session date")
	ErrInvalidSession = errors.New("invalid session")
)

type Registry struct {
	ordered []models.Session
	byKey   map[string]models.Session
}

func New(sessions []models.Session) (*Registry, error) {
	const op = "registry.New"

	if len(sessions) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSessions)
	}

	validate := validator.New()

	// the date is both the remote partition and the ownership key
	dates := make(map[string]string, len(sessions))

	r := &Registry{
		ordered: make([]models.Session, 0, len(sessions)),
		byKey:   make(map[string]models.Session, len(sessions)),
	}

	for _, s := range sessions {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("%s: session %q: %w: %w", op, s.Key, ErrInvalidSession, err)
		}

		if _, err := time.Parse(models.DateLayout, s.Date); err != nil {
			return nil, fmt.Errorf("%s: session %q: %w: bad date %q", op, s.Key, ErrInvalidSession, s.Date)
		}

		if _, ok := r.byKey[s.Key]; ok {
			return nil, fmt.Errorf("%s: %w: %s", op, ErrDuplicateKey, s.Key)
		}

		if other, ok := dates[s.Date]; ok {
			return nil, fmt.Errorf("%s: %w: %s used by %q and %q", op, ErrDuplicateDate, s.Date, other, s.Key)
		}
		dates[s.Date] = s.Key

		if !s.TrainingEnabled {
			s.TrainingQuota = 0
		}

		r.ordered = append(r.ordered, s)
		r.byKey[s.Key] = s
	}

	return r, nil
}

func FromConfig(sessions []config.Session) (*Registry, error) {
	out := make([]models.Session, 0, len(sessions))

	for _, s := range sessions {
		out = append(out, models.Session{
			Key:             s.Key,
			Date:            s.Date,
			Time:            s.Time,
			Title:           s.Title,
			Location:        s.Location,
			Capacity:        s.Capacity,
			TrainingEnabled: s.TrainingEnabled,
			TrainingQuota:   s.TrainingQuota,
			HandRequired:    s.HandRequired,
			WaiverRequired:  s.WaiverRequired,
		})
	}

	return New(out)
}

func (r *Registry) Get(key string) (models.Session, bool) {
	s, ok := r.byKey[key]
	return s, ok
}

// All returns the sessions in configuration order.
func (r *Registry) All() []models.Session {
	out := make([]models.Session, len(r.ordered))
	copy(out, r.ordered)
	return out
}

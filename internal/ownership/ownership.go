// Package ownership remembers which signups a device created, per session date.
//
// The record is advisory: it decides whether the board offers a remove
// control to a device, nothing more. Values are stored as a JSON array of
// names under "mySignups_<date>" in the device's item scope.
package ownership

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"eventSignup/internal/lib/logger/sl"
)

const keyPrefix = "mySignups_"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemStorage
type ItemStorage interface {
	GetItem(ctx context.Context, scope, key string) (string, bool, error)
	SetItem(ctx context.Context, scope, key, value string) error
}

// Names is an insertion-ordered set of registrant names.
type Names []string

func (n Names) Contains(name string) bool {
	return slices.Contains(n, name)
}

// With returns a copy that includes name.
func (n Names) With(name string) Names {
	if n.Contains(name) {
		return slices.Clone(n)
	}
	return append(slices.Clone(n), name)
}

// Without returns a copy with every occurrence of name dropped.
func (n Names) Without(name string) Names {
	out := make(Names, 0, len(n))
	for _, v := range n {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}

type Store struct {
	log     *slog.Logger
	storage ItemStorage
}

func New(log *slog.Logger, storage ItemStorage) *Store {
	return &Store{
		log:     log,
		storage: storage,
	}
}

func Key(sessionDate string) string {
	return keyPrefix + sessionDate
}

// Get returns the saved names for the device and date. Missing or corrupt
// entries come back empty; only storage failures are errors.
func (s *Store) Get(ctx context.Context, device, sessionDate string) (Names, error) {
	const op = "ownership.Get"

	raw, found, err := s.storage.GetItem(ctx, device, Key(sessionDate))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !found || raw == "" {
		return Names{}, nil
	}

	var names []string
	if err = json.Unmarshal([]byte(raw), &names); err != nil {
		s.log.Warn("discarding corrupt ownership record",
			slog.String("op", op),
			slog.String("date", sessionDate),
			sl.Err(err),
		)
		return Names{}, nil
	}

	out := make(Names, 0, len(names))
	for _, name := range names {
		if name != "" && !out.Contains(name) {
			out = append(out, name)
		}
	}

	return out, nil
}

// Save overwrites the names recorded for the device and date.
func (s *Store) Save(ctx context.Context, device, sessionDate string, names Names) error {
	const op = "ownership.Save"

	if names == nil {
		names = Names{}
	}

	b, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.storage.SetItem(ctx, device, Key(sessionDate), string(b)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package controller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventSignup/internal/display"
	"eventSignup/internal/form"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"

	"golang.org/x/sync/errgroup"
)

var ErrUnknownSession = errors.New("session not found")

// Board routes requests to the controller of each configured session.
// Sessions are independent: one failing never disables another.
type Board struct {
	log         *slog.Logger
	order       []string
	controllers map[string]*Controller
}

func NewBoard(log *slog.Logger, sessions []models.Session, gateway Gateway, owners Owners) *Board {
	b := &Board{
		log:         log,
		order:       make([]string, 0, len(sessions)),
		controllers: make(map[string]*Controller, len(sessions)),
	}

	for _, s := range sessions {
		b.order = append(b.order, s.Key)
		b.controllers[s.Key] = New(log, s, gateway, owners)
	}

	return b
}

func (b *Board) Controller(key string) (*Controller, error) {
	c, ok := b.controllers[key]
	if !ok {
		return nil, ErrUnknownSession
	}
	return c, nil
}

// Initialize loads every session concurrently and returns the failures joined.
func (b *Board) Initialize(ctx context.Context) error {
	return b.each(ctx, (*Controller).Initialize)
}

// RefreshAll reloads every session, initializing any that never loaded.
func (b *Board) RefreshAll(ctx context.Context) error {
	return b.each(ctx, (*Controller).Refresh)
}

func (b *Board) each(ctx context.Context, fn func(*Controller, context.Context) error) error {
	var g errgroup.Group

	errs := make([]error, len(b.order))

	for i, key := range b.order {
		i := i
		c := b.controllers[key]
		g.Go(func() error {
			errs[i] = fn(c, ctx)
			return nil
		})
	}

	_ = g.Wait()

	return errors.Join(errs...)
}

// Run refreshes all sessions on every tick until ctx is done.
func (b *Board) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := b.RefreshAll(ctx); err != nil {
				b.log.Warn("failed to refresh sessions", sl.Err(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (b *Board) Views(ctx context.Context, device string) []display.View {
	views := make([]display.View, 0, len(b.order))
	for _, key := range b.order {
		views = append(views, b.controllers[key].View(ctx, device, form.Input{}))
	}
	return views
}

func (b *Board) View(ctx context.Context, key, device string, in form.Input) (display.View, error) {
	c, err := b.Controller(key)
	if err != nil {
		return display.View{}, err
	}
	return c.View(ctx, device, in), nil
}

func (b *Board) Submit(ctx context.Context, key, device string, in form.Input) (display.View, error) {
	c, err := b.Controller(key)
	if err != nil {
		return display.View{}, err
	}
	return c.Submit(ctx, device, in)
}

func (b *Board) Remove(ctx context.Context, key, device, name string) (display.View, error) {
	c, err := b.Controller(key)
	if err != nil {
		return display.View{}, err
	}
	return c.Remove(ctx, device, name)
}

// Refresh reloads one session and renders it for the device.
func (b *Board) Refresh(ctx context.Context, key, device string) (display.View, error) {
	c, err := b.Controller(key)
	if err != nil {
		return display.View{}, err
	}

	err = c.Refresh(ctx)

	return c.View(ctx, device, form.Input{}), err
}

// Package controller runs the fetch, render, mutate, re-render cycle for
// each configured session.
//
// The remote roster is the only source of truth: it is replaced wholesale by
// whatever the gateway returns and never adjusted locally. Client-side
// checks exist to skip round trips that are bound to fail.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eventSignup/internal/display"
	"eventSignup/internal/form"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"
	"eventSignup/internal/ownership"
)

type State int

const (
	Unloaded State = iota
	Loading
	Loaded
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

var (
	ErrNotLoaded        = errors.New("the sign-up list has not loaded yet, please wait")
	ErrBusy             = errors.New("another request for this session is still in progress")
	ErrSessionFull      = errors.New("this session is full")
	ErrAlreadySignedUp  = errors.New("you have already signed up with this name on this device")
	ErrTrainingFull     = errors.New("the quota for 1v1 training has been reached")
	ErrNotOwner         = errors.New("this sign-up is not associated with this device")
	ErrRejectedByRemote = errors.New("the sign-up was not accepted, the list has been refreshed")
	ErrRemoveRejected   = errors.New("the removal was not accepted, the list has been refreshed")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	List(ctx context.Context, date string) ([]models.Registrant, error)
	Add(ctx context.Context, date string, req models.SignupRequest, withTraining bool) ([]models.Registrant, error)
	Remove(ctx context.Context, date, name string) ([]models.Registrant, error)
}

type Owners interface {
	Get(ctx context.Context, device, sessionDate string) (ownership.Names, error)
	Save(ctx context.Context, device, sessionDate string, names ownership.Names) error
}

type Controller struct {
	log     *slog.Logger
	session models.Session
	gateway Gateway
	owners  Owners

	mu      sync.Mutex
	state   State
	roster  []models.Registrant
	version uint64
	busy    bool
}

func New(log *slog.Logger, session models.Session, gateway Gateway, owners Owners) *Controller {
	return &Controller{
		log:     log.With(slog.String("session", session.Key)),
		session: session,
		gateway: gateway,
		owners:  owners,
	}
}

func (c *Controller) Session() models.Session {
	return c.session
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Roster returns a copy of the last authoritative roster.
func (c *Controller) Roster() []models.Registrant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Registrant(nil), c.roster...)
}

// Initialize fetches the roster. On failure the session stays Unloaded and
// may be initialized again. A loaded session is refreshed instead.
func (c *Controller) Initialize(ctx context.Context) error {
	const op = "controller.Initialize"

	log := c.log.With(slog.String("op", op))

	c.mu.Lock()
	switch c.state {
	case Loaded:
		c.mu.Unlock()
		return c.Refresh(ctx)
	case Loading:
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = Loading
	c.mu.Unlock()

	roster, err := c.gateway.List(ctx, c.session.Date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// a mutation response may have loaded the session meanwhile
		if c.state == Loading {
			c.state = Unloaded
		}
		log.Error("failed to load roster", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if c.state == Loading {
		c.replace(roster)
	}

	log.Info("roster loaded", slog.Int("count", len(c.roster)))

	return nil
}

// Refresh re-fetches the roster of a loaded session, keeping the previous
// roster on failure. A response is dropped if a mutation replaced the
// roster while the fetch was in flight.
func (c *Controller) Refresh(ctx context.Context) error {
	const op = "controller.Refresh"

	c.mu.Lock()
	if c.state != Loaded {
		c.mu.Unlock()
		return c.Initialize(ctx)
	}
	seen := c.version
	c.mu.Unlock()

	roster, err := c.gateway.List(ctx, c.session.Date)
	if err != nil {
		c.log.Warn("failed to refresh roster", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version == seen {
		c.replace(roster)
	}

	return nil
}

// View renders the session for a device. An unreadable ownership record
// renders without removal controls.
func (c *Controller) View(ctx context.Context, device string, in form.Input) display.View {
	owned, err := c.owners.Get(ctx, device, c.session.Date)
	if err != nil {
		c.log.Warn("failed to read ownership", slog.String("op", "controller.View"), sl.Err(err))
		owned = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return display.Render(c.session, c.roster, c.state == Loaded, owned, in)
}

// Submit signs a name up. Rejections happen before any network call and
// leave all state untouched; on success the form is reset.
func (c *Controller) Submit(ctx context.Context, device string, in form.Input) (display.View, error) {
	const op = "controller.Submit"

	log := c.log.With(slog.String("op", op))
	in = in.Normalize()

	roster, err := c.acquire(true)
	if err != nil {
		return c.View(ctx, device, in), err
	}
	defer c.release()

	if err = form.Validate(in, display.Requirements(c.session)); err != nil {
		return c.View(ctx, device, in), err
	}

	if display.RemainingSlots(c.session, roster) <= 0 {
		return c.View(ctx, device, in), ErrSessionFull
	}

	owned, err := c.owners.Get(ctx, device, c.session.Date)
	if err != nil {
		log.Error("failed to read ownership", sl.Err(err))
		return c.View(ctx, device, in), fmt.Errorf("%s: %w", op, err)
	}

	if owned.Contains(in.Name) {
		return c.View(ctx, device, in), ErrAlreadySignedUp
	}

	training := c.session.TrainingEnabled && in.Training
	if training && display.RemainingTraining(c.session, roster) <= 0 {
		return c.View(ctx, device, in), ErrTrainingFull
	}

	updated, err := c.gateway.Add(ctx, c.session.Date, models.SignupRequest{
		Name:     in.Name,
		Hand:     in.Hand,
		Training: training,
	}, c.session.TrainingEnabled)
	if err != nil {
		log.Error("failed to sign up", sl.Err(err))
		return c.View(ctx, device, in), fmt.Errorf("%s: %w", op, err)
	}

	c.commit(updated)

	if !models.ContainsName(updated, in.Name) {
		log.Warn("signup missing from returned roster", slog.Int("count", len(updated)))
		return c.View(ctx, device, in), ErrRejectedByRemote
	}

	// the remote already holds the signup, so the record must outlive the caller
	if err = c.owners.Save(context.WithoutCancel(ctx), device, c.session.Date, owned.With(in.Name)); err != nil {
		log.Error("failed to record ownership", sl.Err(err))
		return c.View(ctx, device, form.Input{}), fmt.Errorf("%s: %w", op, err)
	}

	log.Info("signed up", slog.Int("count", len(updated)))

	return c.View(ctx, device, form.Input{}), nil
}

// Remove withdraws a signup this device created.
func (c *Controller) Remove(ctx context.Context, device, name string) (display.View, error) {
	const op = "controller.Remove"

	log := c.log.With(slog.String("op", op))

	if _, err := c.acquire(false); err != nil {
		return c.View(ctx, device, form.Input{}), err
	}
	defer c.release()

	owned, err := c.owners.Get(ctx, device, c.session.Date)
	if err != nil {
		log.Error("failed to read ownership", sl.Err(err))
		return c.View(ctx, device, form.Input{}), fmt.Errorf("%s: %w", op, err)
	}

	if !owned.Contains(name) {
		return c.View(ctx, device, form.Input{}), ErrNotOwner
	}

	updated, err := c.gateway.Remove(ctx, c.session.Date, name)
	if err != nil {
		log.Error("failed to remove signup", sl.Err(err))
		return c.View(ctx, device, form.Input{}), fmt.Errorf("%s: %w", op, err)
	}

	c.commit(updated)

	if models.ContainsName(updated, name) {
		log.Warn("removed name still in returned roster", slog.Int("count", len(updated)))
		return c.View(ctx, device, form.Input{}), ErrRemoveRejected
	}

	if err = c.owners.Save(context.WithoutCancel(ctx), device, c.session.Date, owned.Without(name)); err != nil {
		log.Error("failed to record ownership", sl.Err(err))
		return c.View(ctx, device, form.Input{}), fmt.Errorf("%s: %w", op, err)
	}

	log.Info("signup removed", slog.Int("count", len(updated)))

	return c.View(ctx, device, form.Input{}), nil
}

// acquire claims the per-session mutation slot and returns the roster as it
// stood at that moment.
func (c *Controller) acquire(requireLoaded bool) ([]models.Registrant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if requireLoaded && c.state != Loaded {
		return nil, ErrNotLoaded
	}

	if c.busy {
		return nil, ErrBusy
	}

	c.busy = true

	return append([]models.Registrant(nil), c.roster...), nil
}

func (c *Controller) release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) commit(roster []models.Registrant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(roster)
}

// replace must be called with mu held.
func (c *Controller) replace(roster []models.Registrant) {
	c.roster = append([]models.Registrant(nil), roster...)
	c.state = Loaded
	c.version++
}

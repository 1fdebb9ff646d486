// Package gateway talks to the spreadsheet-backed signup endpoint.
//
// Every action is a single GET against one base URL; the response body is
// always the full roster for the requested date.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"

	"github.com/go-chi/render"
)

const (
	ActionGet    = "get"
	ActionSignup = "signup"
	ActionRemove = "remove"
)

// ErrRequestFailed covers transport, status and decoding failures.
var ErrRequestFailed = errors.New("could not complete request")

type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) List(ctx context.Context, date string) ([]models.Registrant, error) {
	return c.do(ctx, ActionGet, url.Values{"date": {date}})
}

func (c *Client) Add(ctx context.Context, date string, req models.SignupRequest, withTraining bool) ([]models.Registrant, error) {
	params := url.Values{
		"name": {req.Name},
		"date": {date},
	}

	if req.Hand != "" {
		params.Set("hand", req.Hand)
	}

	if withTraining {
		params.Set("training", models.TrainingFlag(req.Training).String())
	}

	return c.do(ctx, ActionSignup, params)
}

func (c *Client) Remove(ctx context.Context, date, name string) ([]models.Registrant, error) {
	return c.do(ctx, ActionRemove, url.Values{
		"name": {name},
		"date": {date},
	})
}

func (c *Client) do(ctx context.Context, action string, params url.Values) (roster []models.Registrant, err error) {
	const op = "gateway.do"

	log := c.log.With(
		slog.String("op", op),
		slog.String("action", action),
		slog.String("date", params.Get("date")),
	)

	started := time.Now()
	defer func() { observe(action, started, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params.Set("action", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+Encode(params), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRequestFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("request failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Error("unexpected status", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s: %w: status %d", op, ErrRequestFailed, resp.StatusCode)
	}

	if err = render.DecodeJSON(resp.Body, &roster); err != nil {
		log.Error("failed to decode roster", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRequestFailed, err)
	}

	// a JSON null leaves the roster unknown, not empty
	if roster == nil {
		log.Error("roster body is null")
		return nil, fmt.Errorf("%s: %w: null roster", op, ErrRequestFailed)
	}

	log.Debug("roster received", slog.Int("count", len(roster)))

	return roster, nil
}

// Encode percent-encodes params the way encodeURIComponent does, so a space
// travels as %20 rather than '+'.
func Encode(params url.Values) string {
	return strings.ReplaceAll(params.Encode(), "+", "%20")
}

package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu       sync.Mutex
	rawQuery []string
}

func (r *recorder) add(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rawQuery = append(r.rawQuery, q)
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rawQuery[len(r.rawQuery)-1]
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func TestList(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t, http.StatusOK,
		`[{"name":"Alex","hand":"right","training":"No"},{"name":"Sam","hand":"left","training":"Yes"}]`)

	c := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second)

	roster, err := c.List(context.Background(), "20250428")
	require.NoError(t, err)

	assert.Equal(t, []models.Registrant{
		{Name: "Alex", Hand: "right", Training: false},
		{Name: "Sam", Hand: "left", Training: true},
	}, roster)

	q, err := url.ParseQuery(rec.last())
	require.NoError(t, err)
	assert.Equal(t, "get", q.Get("action"))
	assert.Equal(t, "20250428", q.Get("date"))
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, http.StatusOK, `[]`)

	roster, err := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second).List(context.Background(), "20250428")
	require.NoError(t, err)
	assert.NotNil(t, roster)
	assert.Empty(t, roster)
}

func TestAddEncodesParameters(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t, http.StatusOK, `[{"name":"Alex","hand":"right","training":"No"}]`)
	c := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second)

	roster, err := c.Add(context.Background(), "20250428", models.SignupRequest{Name: "Alex", Hand: "right"}, true)
	require.NoError(t, err)
	require.Len(t, roster, 1)

	q, err := url.ParseQuery(rec.last())
	require.NoError(t, err)
	assert.Equal(t, "signup", q.Get("action"))
	assert.Equal(t, "Alex", q.Get("name"))
	assert.Equal(t, "right", q.Get("hand"))
	assert.Equal(t, "No", q.Get("training"))
	assert.Equal(t, "20250428", q.Get("date"))
}

func TestAddFreeTextIsPercentEncoded(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t, http.StatusOK, `[]`)
	c := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second)

	_, err := c.Add(context.Background(), "20250428", models.SignupRequest{Name: "Li & Mo+1 张", Training: true}, true)
	require.NoError(t, err)

	raw := rec.last()
	assert.Contains(t, raw, "name=Li%20%26%20Mo%2B1%20%E5%BC%A0")
	assert.Contains(t, raw, "training=Yes")
	assert.NotContains(t, raw, "hand=")

	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	assert.Equal(t, "Li & Mo+1 张", q.Get("name"))
}

func TestAddWithoutTraining(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t, http.StatusOK, `[]`)
	c := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second)

	_, err := c.Add(context.Background(), "20250428", models.SignupRequest{Name: "Alex"}, false)
	require.NoError(t, err)
	assert.NotContains(t, rec.last(), "training=")
}

func TestRemove(t *testing.T) {
	t.Parallel()

	srv, rec := newServer(t, http.StatusOK, `[]`)
	c := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second)

	roster, err := c.Remove(context.Background(), "20250428", "Alex Smith")
	require.NoError(t, err)
	assert.Empty(t, roster)

	raw := rec.last()
	assert.Contains(t, raw, "action=remove")
	assert.Contains(t, raw, "name=Alex%20Smith")
}

func TestFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "Server error", status: http.StatusInternalServerError, body: `[]`},
		{name: "HTML body", status: http.StatusOK, body: `<html>quota exceeded</html>`},
		{name: "Object body", status: http.StatusOK, body: `{"error":"no sheet"}`},
		{name: "Null body", status: http.StatusOK, body: `null`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newServer(t, tc.status, tc.body)

			roster, err := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second).List(context.Background(), "20250428")
			assert.ErrorIs(t, err, ErrRequestFailed)
			assert.Nil(t, roster)
		})
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := New(slogdiscard.NewDiscardLogger(), srv.URL, 50*time.Millisecond).List(context.Background(), "20250428")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUnreachable(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, http.StatusOK, `[]`)
	base := srv.URL
	srv.Close()

	_, err := New(slogdiscard.NewDiscardLogger(), base, time.Second).List(context.Background(), "20250428")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	got := Encode(url.Values{"name": {"a b"}})
	assert.Equal(t, "name=a%20b", got)
	assert.False(t, strings.Contains(got, "+"))
}

// Package viewer implements the client-side detail view controller for a
// single tétel: a small state machine over the fetch lifecycle with retry,
// offline classification, role-gated actions and memoized text derivations.
package viewer

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/DraymeM/tiomi/internal/dto"
	"github.com/DraymeM/tiomi/pkg/markdown"
)

// ErrUnauthorized is returned when a privileged action is attempted without
// the required role. The check runs before any network call.
var ErrUnauthorized = errors.New("viewer: not authorized")

// Retry budget beyond the first attempt.
const maxRetries = 2

// State is the fetch lifecycle state of the controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AuthContext carries the caller's session identity. It is passed explicitly
// rather than read from shared state so authorization decisions stay testable.
type AuthContext struct {
	IsAuthenticated bool
	IsSuperUser     bool
	Username        string
	// Logout ends the session. May be nil for anonymous contexts.
	Logout func()
}

// TetelFetcher is the network boundary the controller talks to.
type TetelFetcher interface {
	FetchTetelDetails(ctx context.Context, id int64) (*dto.TetelDetailsResponse, error)
	DeleteTetel(ctx context.Context, id int64) error
}

// Hooks are callbacks invoked after a confirmed delete. Either may be nil.
type Hooks struct {
	// InvalidateListing drops any cached catalog listing.
	InvalidateListing func()
	// Navigate leaves the detail view. Called only after server confirmation.
	Navigate func(path string)
}

// DetailController drives the detail view for one tétel identifier.
type DetailController struct {
	mu      sync.Mutex
	id      int64
	state   State
	data    *dto.TetelDetailsResponse
	err     error
	offline bool
	closed  bool
	gen     int

	auth    AuthContext
	fetcher TetelFetcher
	hooks   Hooks

	// Derivations are memoized against the response they were computed from.
	memoData    *dto.TetelDetailsResponse
	memoMinutes int
	memoSpeech  string
}

// NewDetailController parses the raw identifier and prepares the controller.
// A raw id that does not parse to a positive integer keeps the controller in
// Idle forever: Load becomes a no-op and no error is raised.
func NewDetailController(rawID string, auth AuthContext, fetcher TetelFetcher, hooks Hooks) *DetailController {
	c := &DetailController{
		state:   StateIdle,
		auth:    auth,
		fetcher: fetcher,
		hooks:   hooks,
	}
	if id, err := strconv.ParseInt(rawID, 10, 64); err == nil && id > 0 {
		c.id = id
	}
	return c
}

// Load fetches the detail payload. Transient failures are retried up to
// maxRetries times; non-retryable errors (HTTP 4xx, cancellation) fail
// immediately. A result arriving after Close is discarded.
func (c *DetailController) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed || c.id <= 0 {
		c.mu.Unlock()
		return nil
	}
	c.state = StateLoading
	gen := c.gen
	id := c.id
	c.mu.Unlock()

	var data *dto.TetelDetailsResponse
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		data, err = c.fetcher.FetchTetelDetails(ctx, id)
		if err == nil || !isRetryable(err) {
			break
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		// The view was torn down while the fetch was in flight.
		return nil
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
		c.offline = isOffline(err)
		return err
	}
	c.state = StateReady
	c.data = data
	c.err = nil
	c.offline = false
	return nil
}

// Delete removes the tétel. Requires an authenticated superuser; otherwise it
// fails with ErrUnauthorized before any network call. On server confirmation
// it invalidates the listing cache and navigates away.
func (c *DetailController) Delete(ctx context.Context) error {
	if !c.CanDelete() {
		return ErrUnauthorized
	}

	c.mu.Lock()
	id := c.id
	c.mu.Unlock()
	if id <= 0 {
		return ErrUnauthorized
	}

	if err := c.fetcher.DeleteTetel(ctx, id); err != nil {
		return err
	}

	if c.hooks.InvalidateListing != nil {
		c.hooks.InvalidateListing()
	}
	if c.hooks.Navigate != nil {
		c.hooks.Navigate("/tetelek")
	}
	return nil
}

// CanEdit reports whether the edit affordance is available. Editing is
// collaborative: any authenticated user may edit.
func (c *DetailController) CanEdit() bool {
	return c.auth.IsAuthenticated
}

// CanDelete reports whether the delete affordance is available. Deletion is
// privileged. The server re-checks this independently.
func (c *DetailController) CanDelete() bool {
	return c.auth.IsAuthenticated && c.auth.IsSuperUser
}

// State returns the current lifecycle state.
func (c *DetailController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Data returns the loaded payload, or nil before Ready.
func (c *DetailController) Data() *dto.TetelDetailsResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Err returns the failure, or nil.
func (c *DetailController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Offline reports whether the last failure looked like missing connectivity,
// so callers can show an offline variant instead of a generic error.
func (c *DetailController) Offline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateFailed && c.offline
}

// ReadingMinutes returns the derived reading estimate for the loaded payload.
func (c *DetailController) ReadingMinutes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	return c.memoMinutes
}

// SpeechText returns the text-to-speech rendition of the loaded payload.
func (c *DetailController) SpeechText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deriveLocked()
	return c.memoSpeech
}

// deriveLocked recomputes the memoized derivations when the payload changed.
func (c *DetailController) deriveLocked() {
	if c.data == nil {
		c.memoData = nil
		c.memoMinutes = 0
		c.memoSpeech = ""
		return
	}
	if c.memoData == c.data {
		return
	}

	sections := make([]markdown.Section, 0, len(c.data.Sections))
	for _, s := range c.data.Sections {
		subs := make([]markdown.Subsection, 0, len(s.Subsections))
		for _, sub := range s.Subsections {
			subs = append(subs, markdown.Subsection{Title: sub.Title, Description: sub.Description})
		}
		sections = append(sections, markdown.Section{Content: s.Content, Subsections: subs})
	}
	summary := ""
	if c.data.Osszegzes != nil {
		summary = c.data.Osszegzes.Content
	}

	c.memoMinutes = markdown.ReadingMinutes(sections, summary)
	c.memoSpeech = markdown.SpeechText(c.data.Tetel.Name, sections, summary)
	c.memoData = c.data
}

// Close tears the controller down. Any in-flight fetch resolving afterwards
// leaves the state untouched.
func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
}

package session

import (
	"context"
	"fmt"
	"sync"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/store"
	"github.com/MKhiriev/go-event-portal/models"
)

// Controller is the single owner of the session [State].
//
// All methods are safe for concurrent use. Every state change is queued
// under the state lock and subscribers receive the queued snapshots in order,
// one at a time, without internal locks held. A goroutine that changes the
// state while another one is notifying leaves its snapshot to that goroutine
// and does not wait for the subscribers. Subscribers may call UpdateUser or
// ReplaceUser but must not call Login or Logout synchronously.
type Controller struct {
	gateway     Gateway
	credentials store.CredentialStore
	logger      *logger.Logger

	// opMu serialises operations that write the credential store (Login,
	// Logout, sync-failure logout) so that store contents and Authenticated
	// change together.
	opMu sync.Mutex

	mu          sync.Mutex
	state       State
	generation  uint64
	started     bool
	closed      bool
	subscribers map[int]func(State)
	nextSubID   int

	// outbox holds snapshots not yet delivered; notifying marks the
	// goroutine that drains it.
	outbox    []State
	notifying bool

	sync *profileSync
}

// New builds a controller whose initial state reflects credential presence.
// No profile is fetched until Start is called.
func New(ctx context.Context, gateway Gateway, credentials store.CredentialStore, log *logger.Logger) (*Controller, error) {
	_, ok, err := credentials.Get(ctx)
	if err != nil {
		log.Err(err).Str("func", "session.New").Msg("failed to read stored credential")
		return nil, fmt.Errorf("read stored credential: %w", err)
	}

	c := &Controller{
		gateway:     gateway,
		credentials: credentials,
		logger:      log,
		state:       State{Authenticated: ok},
		subscribers: make(map[int]func(State)),
	}
	c.sync = newProfileSync(c)

	return c, nil
}

// Start performs the initial-mount publication: subscribers receive the
// current state and, when a credential was found, the profile fetch begins.
// Calls after the first are no-ops.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.sync.bind(ctx)
	c.transitionLocked()
	c.enqueueLocked()
	c.mu.Unlock()

	c.publish()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Login authenticates through the gateway. The gateway persists the
// credential before returning, so on success the session becomes
// authenticated immediately. On failure the state is left unchanged and the
// error is returned as is.
func (c *Controller) Login(ctx context.Context, payload models.LoginPayload) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.isClosed() {
		return ErrClosed
	}

	if _, err := c.gateway.Login(ctx, payload); err != nil {
		c.logger.Debug().Err(err).Str("func", "Controller.Login").Msg("login rejected")
		return err
	}

	c.setAuthenticated(true)
	c.logger.Info().Str("func", "Controller.Login").Msg("logged in")
	return nil
}

// Logout clears the stored credential and the session. It never fails; a
// store error is logged.
func (c *Controller) Logout() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.logoutLocked("user")
}

// logoutLocked requires opMu.
func (c *Controller) logoutLocked(reason string) {
	if err := c.credentials.Clear(context.Background()); err != nil {
		c.logger.Err(err).Str("func", "Controller.Logout").Msg("failed to clear stored credential")
	}

	c.setAuthenticated(false)
	c.logger.Info().Str("func", "Controller.Logout").Str("reason", reason).Msg("logged out")
}

// UpdateUser merges the non-zero fields of patch into the cached profile.
// It is a no-op while no profile is cached and never changes Authenticated.
func (c *Controller) UpdateUser(patch models.UserProfile) {
	c.mu.Lock()
	if c.state.User == nil {
		c.mu.Unlock()
		return
	}

	merged := *c.state.User
	if err := mergo.Merge(&merged, patch, mergo.WithOverride); err != nil {
		c.mu.Unlock()
		c.logger.Err(err).Str("func", "Controller.UpdateUser").Msg("failed to merge profile")
		return
	}
	c.state.User = &merged
	c.enqueueLocked()
	c.mu.Unlock()

	c.publish()
}

// ReplaceUser swaps the cached profile for user when both belong to the same
// account. Unlike UpdateUser, empty fields of user clear the cached ones.
func (c *Controller) ReplaceUser(user models.UserProfile) {
	c.mu.Lock()
	if c.state.User == nil || c.state.User.ID != user.ID {
		c.mu.Unlock()
		return
	}

	replaced := user
	replaced.Roles = append([]string(nil), user.Roles...)
	c.state.User = &replaced
	c.enqueueLocked()
	c.mu.Unlock()

	c.publish()
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

// Wait blocks until no profile fetch is in flight.
func (c *Controller) Wait() {
	c.sync.wait()
}

// Close cancels any in-flight profile fetch and waits for it to finish.
// Subsequent transitions start no fetches.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.sync.stop()
}

func (c *Controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// setAuthenticated applies a new Authenticated value, running a transition
// only when it actually changes.
func (c *Controller) setAuthenticated(authenticated bool) {
	c.mu.Lock()
	if c.state.Authenticated == authenticated {
		c.mu.Unlock()
		return
	}

	c.state.Authenticated = authenticated
	if !authenticated {
		c.state.User = nil
	}
	c.transitionLocked()
	c.enqueueLocked()
	c.mu.Unlock()

	c.publish()
}

// transitionLocked starts a new generation and hands it to the profile sync.
// Requires mu.
func (c *Controller) transitionLocked() {
	c.generation++
	c.logger.Debug().
		Str("func", "Controller.transition").
		Uint64("generation", c.generation).
		Bool("authenticated", c.state.Authenticated).
		Msg("session transition")

	c.sync.onTransition(c.generation, c.state.Authenticated, c.closed)
}

// applyProfile stores a fetched profile if gen is still current.
func (c *Controller) applyProfile(gen uint64, profile models.UserProfile) {
	c.mu.Lock()
	if gen != c.generation || !c.state.Authenticated {
		c.mu.Unlock()
		c.logger.Debug().Str("func", "Controller.applyProfile").Uint64("generation", gen).Msg("dropping stale profile")
		return
	}
	c.state.User = &profile
	c.enqueueLocked()
	c.mu.Unlock()

	c.publish()
}

// failSync logs out if gen is still current. An unreadable profile with a
// present credential is an invalid session.
func (c *Controller) failSync(gen uint64, err error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	current := gen == c.generation && !c.closed
	c.mu.Unlock()

	if !current {
		c.logger.Debug().Err(err).Str("func", "Controller.failSync").Uint64("generation", gen).Msg("dropping stale sync failure")
		return
	}

	c.logger.Warn().Err(err).Str("func", "Controller.failSync").Uint64("generation", gen).Msg("profile fetch failed, logging out")
	c.logoutLocked("profile fetch failed")
}

// enqueueLocked queues the current state for subscribers. Requires mu, so
// the queue order is the order of the changes.
func (c *Controller) enqueueLocked() {
	c.outbox = append(c.outbox, c.state.clone())
}

// publish drains the outbox unless another goroutine is already doing so.
// Once the outbox is empty the last delivered snapshot is the current state.
func (c *Controller) publish() {
	c.mu.Lock()
	if c.notifying {
		c.mu.Unlock()
		return
	}
	c.notifying = true

	for len(c.outbox) > 0 {
		next := c.outbox[0]
		c.outbox = c.outbox[1:]

		subs := make([]func(State), 0, len(c.subscribers))
		for _, fn := range c.subscribers {
			subs = append(subs, fn)
		}
		c.mu.Unlock()

		for _, fn := range subs {
			fn(next.clone())
		}

		c.mu.Lock()
	}

	c.outbox = nil
	c.notifying = false
	c.mu.Unlock()
}

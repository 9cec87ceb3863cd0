package session

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-event-portal/internal/utils"
)

// profileSync is the reaction to session transitions: on a transition to
// authenticated it fetches the current user in the background; on a
// transition to logged-out it only cancels the previous fetch.
type profileSync struct {
	controller *Controller
	requestIDs *utils.UUIDGenerator

	mu     sync.Mutex
	root   context.Context
	stopFn context.CancelFunc
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newProfileSync(c *Controller) *profileSync {
	root, stop := context.WithCancel(context.Background())
	return &profileSync{controller: c, requestIDs: utils.NewUUIDGenerator(), root: root, stopFn: stop}
}

// bind derives the fetch contexts from ctx from now on.
func (s *profileSync) bind(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopFn()
	s.root, s.stopFn = context.WithCancel(context.WithoutCancel(ctx))
	context.AfterFunc(ctx, s.stopFn)
}

func (s *profileSync) onTransition(gen uint64, authenticated, closed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if !authenticated || closed {
		return
	}

	ctx, cancel := context.WithCancel(s.root)
	s.cancel = cancel
	s.wg.Add(1)

	go s.fetch(ctx, gen)
}

func (s *profileSync) fetch(ctx context.Context, gen uint64) {
	defer s.wg.Done()

	// the gateway sends this id as X-Request-ID
	requestID := s.requestIDs.Generate()
	ctx = utils.WithRequestID(ctx, requestID)
	s.controller.logger.Debug().
		Str("func", "profileSync.fetch").
		Uint64("generation", gen).
		Str("request_id", requestID).
		Msg("fetching current user")

	profile, err := s.controller.gateway.FetchCurrentUser(ctx)
	if err != nil {
		// a fetch cut short by our own cancellation is superseded, not failed
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return
		}
		s.controller.failSync(gen, err)
		return
	}

	s.controller.applyProfile(gen, profile)
}

func (s *profileSync) wait() {
	s.wg.Wait()
}

func (s *profileSync) stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.stopFn()
	s.mu.Unlock()

	s.wg.Wait()
}

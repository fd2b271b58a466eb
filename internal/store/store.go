// Package store implements the persisted state container and the five
// async slices living inside it. All mutation flows through a single
// dispatch entry point that applies a named reducer atomically, logs it,
// counts it, and schedules an asynchronous write-back of the serialized
// state. Reads take a shared lock; no component mutates fields directly.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/store/metrics"
	"github.com/supportdesk/deskclient/internal/store/persist"
)

// APIs bundles the resource clients the slices call.
type APIs struct {
	Session ports.SessionAPI
	Query   ports.QueryAPI
	Tag     ports.TagAPI
	User    ports.UserAPI
	Meeting ports.MeetingAPI
}

// Store is the single shared mutable resource of the client. It rehydrates
// from the engine before New returns, so a caller can never observe a
// half-restored session.
type Store struct {
	mu     sync.RWMutex
	root   RootState
	engine persist.Engine
	log    zerolog.Logger

	persistCh chan []byte
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error

	Session *SessionSlice
	Query   *QuerySlice
	Tag     *TagSlice
	User    *UserSlice
	Meeting *MeetingSlice
}

// New builds a Store over the given engine, rehydrating any previously
// persisted state. A snapshot that fails to load or decode is discarded and
// the store starts empty; rehydration problems are never fatal.
func New(ctx context.Context, apis APIs, engine persist.Engine, log zerolog.Logger) (*Store, error) {
	s := &Store{
		engine:    engine,
		log:       log,
		persistCh: make(chan []byte, 1),
		done:      make(chan struct{}),
	}
	s.Session = &SessionSlice{st: s, api: apis.Session}
	s.Query = &QuerySlice{st: s, api: apis.Query}
	s.Tag = &TagSlice{st: s, api: apis.Tag}
	s.User = &UserSlice{st: s, api: apis.User}
	s.Meeting = &MeetingSlice{st: s, api: apis.Meeting}

	s.rehydrate(ctx)

	s.wg.Add(1)
	go s.persistLoop()

	return s, nil
}

func (s *Store) rehydrate(ctx context.Context) {
	snap, err := s.engine.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("rehydration failed, starting empty")
		metrics.RehydrationsTotal.WithLabelValues("error").Inc()
		return
	}
	if snap == nil {
		metrics.RehydrationsTotal.WithLabelValues("empty").Inc()
		return
	}

	var root RootState
	if err := json.Unmarshal(snap, &root); err != nil {
		s.log.Warn().Err(err).Msg("persisted state unreadable, starting empty")
		metrics.RehydrationsTotal.WithLabelValues("error").Inc()
		return
	}

	// The session invariant: user and token exist together or not at all.
	// A snapshot violating it (or carrying an expired JWT) is logged out.
	if root.Session.User == nil || root.Session.Token == "" {
		root.Session.User = nil
		root.Session.Token = ""
	} else if tokenExpired(root.Session.Token, time.Now()) {
		s.log.Info().Msg("persisted session token expired, logging out")
		root.Session.User = nil
		root.Session.Token = ""
	}

	s.root = root
	metrics.RehydrationsTotal.WithLabelValues("restored").Inc()
	s.log.Debug().Msg("state rehydrated")
}

// tokenExpired reports whether token decodes as a JWT whose exp claim has
// passed. Tokens are otherwise opaque: anything that does not decode, or
// decodes without an exp claim, is kept as issued.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// dispatch applies one reducer atomically, then schedules a write-back of
// the resulting snapshot. It is the only place state changes.
func (s *Store) dispatch(slice, action string, reduce func(*RootState)) {
	s.mu.Lock()
	reduce(&s.root)
	snap, err := json.Marshal(&s.root)
	s.mu.Unlock()

	s.log.Debug().Str("slice", slice).Str("action", action).Msg("action")
	metrics.ActionsTotal.WithLabelValues(slice, action).Inc()

	if err != nil {
		s.log.Error().Err(err).Msg("state snapshot marshal failed")
		return
	}

	// Latest-wins hand-off: if the writer is behind, the stale pending
	// snapshot is replaced rather than queued.
	select {
	case s.persistCh <- snap:
	default:
		select {
		case <-s.persistCh:
		default:
		}
		select {
		case s.persistCh <- snap:
		default:
		}
	}
}

func (s *Store) persistLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case snap := <-s.persistCh:
			start := time.Now()
			if err := s.engine.Save(context.Background(), snap); err != nil {
				s.log.Warn().Err(err).Msg("state write-back failed")
			}
			metrics.PersistDuration.Observe(time.Since(start).Seconds())
		}
	}
}

// Close stops the writer, flushes the final state synchronously, and closes
// the engine.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()

		s.mu.RLock()
		snap, err := json.Marshal(&s.root)
		s.mu.RUnlock()
		if err == nil {
			if serr := s.engine.Save(context.Background(), snap); serr != nil {
				s.closeErr = serr
			}
		}
		if cerr := s.engine.Close(); s.closeErr == nil {
			s.closeErr = cerr
		}
	})
	return s.closeErr
}

// Token returns the session's bearer token, or "" when logged out. Slices
// read it at call time; it is never cached by a resource client.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.Session.Token
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.root.Session.User == nil {
		return nil
	}
	u := *s.root.Session.User
	return &u
}

// view runs fn with read access to the root state.
func (s *Store) view(fn func(*RootState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.root)
}

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/portal/internal/logging"
)

type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
	log       logging.Logger
}

// NewStore returns an empty Store. Call Restore to load the persisted state.
func NewStore(p Persister, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{persister: p, log: log.With("component", "session")}
}

// Restore replaces the in-memory state with the persisted snapshot. A missing
// snapshot leaves the store empty. Unlike the write methods, Restore reports
// errors: a corrupt snapshot at startup is worth surfacing.
func (s *Store) Restore(ctx context.Context) error {
	blob, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	var st State
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &st); err != nil {
			return fmt.Errorf("decode session: %w", err)
		}
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// Credential returns the current token, "" when unauthenticated.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Profile
}

// Snapshot returns a consistent copy of credential and profile.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetCredential replaces the credential. The value is not validated.
func (s *Store) SetCredential(ctx context.Context, token string) {
	s.update(ctx, func(st *State) { st.Token = token })
}

func (s *Store) ClearCredential(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Token = "" })
}

// SetProfile replaces the profile wholesale.
func (s *Store) SetProfile(ctx context.Context, p Profile) {
	s.update(ctx, func(st *State) { st.Profile = p })
}

func (s *Store) ClearProfile(ctx context.Context) {
	s.update(ctx, func(st *State) { st.Profile = Profile{} })
}

// UpdateProfile applies fn to the profile only while a credential is held,
// and reports whether it did. Check and write happen under one lock, so a
// logout that lands while a request is in flight is never undone by it.
func (s *Store) UpdateProfile(ctx context.Context, fn func(p *Profile)) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Token == "" {
		return Profile{}, false
	}
	fn(&s.state.Profile)
	s.persist(ctx)
	return s.state.Profile, true
}

// update mutates and persists under the write lock so that persisted order
// matches in-memory order.
func (s *Store) update(ctx context.Context, fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	s.persist(ctx)
}

// persist saves the current state. Callers hold the write lock.
func (s *Store) persist(ctx context.Context) {
	blob, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error(ctx, "encode session", "error", err)
		return
	}
	if err := s.persister.Save(context.WithoutCancel(ctx), blob); err != nil {
		s.log.Error(ctx, "persist session", "error", err)
	}
}

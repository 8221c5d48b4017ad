// Package session tracks who is logged in and the state container that
// belongs to each of them.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/gommon/log"

	journal "farmconnect/pkg/journal/repository"
	"farmconnect/pkg/state"
)

// Session is created at login and is read-only until logout.
type Session struct {
	FarmerID  string    `json:"farmerId"`
	StartedAt time.Time `json:"startedAt"`
}

// Factory builds the state container of a new session.
type Factory func(farmerID string) *state.State

type Registry struct {
	mu      sync.RWMutex
	states  map[string]*state.State
	factory Factory
	journal journal.JournalRepository
}

func NewRegistry(factory Factory, j journal.JournalRepository) *Registry {
	return &Registry{states: map[string]*state.State{}, factory: factory, journal: j}
}

// Open registers sess and mounts a fresh container in the background. A
// container left over from an earlier login of the same farmer is closed.
func (r *Registry) Open(ctx context.Context, sess *Session) *state.State {
	st := r.factory(sess.FarmerID)
	r.mu.Lock()
	old := r.states[sess.FarmerID]
	r.states[sess.FarmerID] = st
	r.mu.Unlock()
	if old != nil {
		old.Close()
	}
	go st.Mount(context.WithoutCancel(ctx))
	return st
}

func (r *Registry) Get(farmerID string) (*state.State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.states[farmerID]
	return st, ok
}

// Close ends the session: the container is closed so a mount that has not
// started yet never will, in-flight loads are discarded, pending syncs are
// awaited and the farmer's journal rows are dropped.
func (r *Registry) Close(farmerID string) bool {
	r.mu.Lock()
	st, ok := r.states[farmerID]
	delete(r.states, farmerID)
	r.mu.Unlock()
	if !ok {
		return false
	}
	st.Close()
	st.Wait()
	if r.journal != nil {
		if err := r.journal.DeleteByFarmer(farmerID); err != nil {
			log.Errorf("[session] clear journal of %s: %v", farmerID, err)
		}
	}
	log.Infof("[session] %s logged out", farmerID)
	return true
}

// Each visits every open container. fn runs outside the registry lock.
func (r *Registry) Each(fn func(*state.State)) {
	r.mu.RLock()
	all := make([]*state.State, 0, len(r.states))
	for _, st := range r.states {
		all = append(all, st)
	}
	r.mu.RUnlock()
	for _, st := range all {
		fn(st)
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}

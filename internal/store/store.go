// Package store is a small single-writer state container for the client:
// actions mutate one shared State under a mutex and every subscriber gets a
// snapshot after each change. UI code reads snapshots, services dispatch.
package store

import "sync"

// Action mutates the state. Implementations live next to the slice they
// touch.
type Action interface {
	apply(s *State)
}

// follower is implemented by actions that need to run something after their
// state change has been published, such as scheduling a later dispatch.
type follower interface {
	follow(st *Store)
}

// State is the whole client state tree.
type State struct {
	Auth   AuthState
	Trips  TripsState
	Hotels HotelsState
	UI     UIState
}

func (s State) clone() State {
	out := s
	out.Trips = s.Trips.clone()
	out.Hotels = s.Hotels.clone()
	out.UI = s.UI.clone()
	return out
}

// Store serializes dispatches and fans snapshots out to subscribers. Slow
// subscribers miss snapshots rather than blocking a dispatch.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  map[chan State]struct{}
}

func New() *Store {
	return &Store{
		state: State{
			Hotels: newHotelsState(),
			UI:     newUIState(),
		},
		subs: map[chan State]struct{}{},
	}
}

// Dispatch applies the action and publishes the resulting snapshot.
func (st *Store) Dispatch(a Action) {
	st.mu.Lock()
	a.apply(&st.state)
	snap := st.state.clone()
	st.mu.Unlock()

	st.broadcast(snap)
	if f, ok := a.(follower); ok {
		f.follow(st)
	}
}

// State returns a snapshot of the current state.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state.clone()
}

// Subscribe returns a channel receiving a snapshot after every dispatch.
func (st *Store) Subscribe() chan State {
	ch := make(chan State, 8)
	st.mu.Lock()
	st.subs[ch] = struct{}{}
	st.mu.Unlock()
	return ch
}

func (st *Store) Unsubscribe(ch chan State) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.subs[ch]; ok {
		delete(st.subs, ch)
		close(ch)
	}
}

func (st *Store) broadcast(snap State) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for ch := range st.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

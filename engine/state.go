package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type machine interface {
	enterInitial(a *App)
	transition(a *App)
}

// States is a finite state machine resource. Set only queues the next
// state; the switch happens at the start of the next frame so every system
// of a frame observes one consistent state.
type States[S comparable] struct {
	name    string
	current S
	next    *S
	onEnter map[S][]System
	onExit  map[S][]System
}

// AddState registers a state machine starting in initial
func AddState[S comparable](a *App, name string, initial S) *States[S] {
	st := &States[S]{
		name:    name,
		current: initial,
		onEnter: make(map[S][]System),
		onExit:  make(map[S][]System),
	}
	a.machines = append(a.machines, st)
	AddResource(a.Resources, st)
	return st
}

// Current returns the active state
func (s *States[S]) Current() S {
	return s.current
}

// Set queues a transition; the last call in a frame wins
func (s *States[S]) Set(next S) {
	s.next = &next
}

// Pending reports the queued state, if any
func (s *States[S]) Pending() (S, bool) {
	if s.next == nil {
		var zero S
		return zero, false
	}
	return *s.next, true
}

// OnEnter registers a system run when state is entered
func (s *States[S]) OnEnter(state S, sys System) *States[S] {
	s.onEnter[state] = append(s.onEnter[state], sys)
	return s
}

// OnExit registers a system run when state is left
func (s *States[S]) OnExit(state S, sys System) *States[S] {
	s.onExit[state] = append(s.onExit[state], sys)
	return s
}

func (s *States[S]) enterInitial(a *App) {
	for _, sys := range s.onEnter[s.current] {
		sys(a)
	}
}

func (s *States[S]) transition(a *App) {
	if s.next == nil {
		return
	}
	next := *s.next
	s.next = nil
	if next == s.current {
		return
	}
	log.Debug().
		Str("machine", s.name).
		Str("from", fmt.Sprint(s.current)).
		Str("to", fmt.Sprint(next)).
		Msg("state transition")
	for _, sys := range s.onExit[s.current] {
		sys(a)
	}
	s.current = next
	for _, sys := range s.onEnter[next] {
		sys(a)
	}
}

// InState gates on a machine being in one state
func InState[S comparable](s *States[S], state S) Condition {
	return func(*App) bool {
		return s.current == state
	}
}

// All holds when every condition holds
func All(conds ...Condition) Condition {
	return func(a *App) bool {
		return a.allow(conds)
	}
}

// Not negates a condition
func Not(c Condition) Condition {
	return func(a *App) bool {
		return !c(a)
	}
}

package services

import (
	"context"
	"fmt"
)

// ScreenState is the lifecycle state of one screen's snapshot
type ScreenState string

const (
	StateIdle         ScreenState = "idle"
	StateLoading      ScreenState = "loading"
	StateLoaded       ScreenState = "loaded"
	StateLoadFailed   ScreenState = "load_failed"
	StateSubmitting   ScreenState = "submitting"
	StateSubmitFailed ScreenState = "submit_failed"
)

// Idle may go straight to Submitting: a write request opens its screen
// without loading it first and loads it only after the write.
var screenTransitions = map[ScreenState][]ScreenState{
	StateIdle:         {StateLoading, StateSubmitting},
	StateLoading:      {StateLoaded, StateLoadFailed},
	StateLoaded:       {StateLoading, StateSubmitting},
	StateLoadFailed:   {StateLoading},
	StateSubmitting:   {StateLoaded, StateLoadFailed, StateSubmitFailed},
	StateSubmitFailed: {StateLoading, StateSubmitting},
}

// Screen owns the row snapshot of one screen and its state.
// It is not safe for concurrent use; each request builds its own.
type Screen[T any] struct {
	fetch func(context.Context) ([]T, error)
	state ScreenState
	rows  []T
	err   error
}

// NewScreen creates an idle screen that reads its rows with fetch
func NewScreen[T any](fetch func(context.Context) ([]T, error)) *Screen[T] {
	return &Screen[T]{fetch: fetch, state: StateIdle, rows: []T{}}
}

func (s *Screen[T]) State() ScreenState { return s.state }

func (s *Screen[T]) Rows() []T { return s.rows }

// Err returns the failure of the last load or submit
func (s *Screen[T]) Err() error { return s.err }

func (s *Screen[T]) transition(to ScreenState) error {
	for _, allowed := range screenTransitions[s.state] {
		if allowed == to {
			s.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}

// Load fetches the authoritative rows. On failure the screen holds no rows
// and ends in LoadFailed with the failure in Err; there is no retry.
// The returned error is only ever an invalid transition.
func (s *Screen[T]) Load(ctx context.Context) error {
	if err := s.transition(StateLoading); err != nil {
		return err
	}

	rows, err := s.fetch(ctx)
	if err != nil {
		s.rows = []T{}
		s.err = err
		return s.transition(StateLoadFailed)
	}

	if rows == nil {
		rows = []T{}
	}
	s.rows = rows
	s.err = nil
	return s.transition(StateLoaded)
}

// Submit runs a write. A failed write leaves the rows as they were and ends
// in SubmitFailed; a successful one re-fetches the rows rather than patching them.
func (s *Screen[T]) Submit(ctx context.Context, write func(context.Context) error) error {
	if err := s.transition(StateSubmitting); err != nil {
		return err
	}

	if err := write(ctx); err != nil {
		s.err = err
		if terr := s.transition(StateSubmitFailed); terr != nil {
			return terr
		}
		return err
	}

	rows, err := s.fetch(ctx)
	if err != nil {
		s.rows = []T{}
		s.err = err
		return s.transition(StateLoadFailed)
	}

	if rows == nil {
		rows = []T{}
	}
	s.rows = rows
	s.err = nil
	return s.transition(StateLoaded)
}

// ScreenSnapshot is the serializable view of a screen after searching
type ScreenSnapshot[T any] struct {
	State  ScreenState `json:"state"`
	Search string      `json:"search,omitempty"`
	Total  int         `json:"total"`
	Rows   []T         `json:"rows"`
}

// Snapshot returns the rows matching term; Total counts the rows before filtering
func (s *Screen[T]) Snapshot(term string, fields func(T) []string) ScreenSnapshot[T] {
	return ScreenSnapshot[T]{
		State:  s.state,
		Search: term,
		Total:  len(s.rows),
		Rows:   Search(s.rows, term, fields),
	}
}

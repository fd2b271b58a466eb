package state

// Status tracks the observable lifecycle of a slice's in-flight work.
// Exactly one of the three transitions applies per operation: Begin on
// dispatch, then Resolve or Fail when it settles. Status never persists;
// a rehydrated slice always starts idle.
type Status struct {
	Loading bool   `json:"-"`
	Err     *Fault `json:"-"`
}

// Begin marks the pending phase: loading set, previous error cleared.
func (s *Status) Begin() {
	s.Loading = true
	s.Err = nil
}

// Resolve marks the fulfilled phase.
func (s *Status) Resolve() {
	s.Loading = false
	s.Err = nil
}

// Fail marks the rejected phase, recording the fault.
func (s *Status) Fail(f *Fault) {
	s.Loading = false
	s.Err = f
}

// ResetErr clears the recorded fault without touching Loading. This is the
// explicit acknowledgement a caller issues after surfacing the error.
func (s *Status) ResetErr() {
	s.Err = nil
}

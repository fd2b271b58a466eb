package state

import "errors"

// Fault is the normalized failure recorded by a rejected operation. Known
// faults carry the message the backend reported in its `{err}` body;
// unknown faults are transport failures or unexpected response shapes and
// carry no message at all.
type Fault struct {
	Message string
	Known   bool
}

// ServerFault wraps a backend-reported error message.
func ServerFault(msg string) *Fault {
	return &Fault{Message: msg, Known: true}
}

// UnknownFault marks a failure with no structured message.
func UnknownFault() *Fault {
	return &Fault{}
}

// FaultFrom normalizes err into a Fault. An err that already is a Fault
// passes through; anything else becomes an unknown fault.
func FaultFrom(err error) *Fault {
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return UnknownFault()
}

func (f *Fault) Error() string {
	if f.Known {
		return f.Message
	}
	return "unknown error"
}

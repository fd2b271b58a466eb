package store

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/core/state"
	"github.com/supportdesk/deskclient/internal/pkg/validate"
	"github.com/supportdesk/deskclient/internal/store/metrics"
)

const sessionSlice = "session"

// SessionSlice holds the authenticated identity and bearer token. It is the
// one slice every other slice depends on: mutating operations read the
// token from here at call time.
type SessionSlice struct {
	st  *Store
	api ports.SessionAPI
}

func (s *SessionSlice) pending(op string) {
	s.st.dispatch(sessionSlice, op+"/pending", func(r *RootState) {
		r.Session.Status.Begin()
	})
}

func (s *SessionSlice) rejected(op string, f *state.Fault) {
	s.st.dispatch(sessionSlice, op+"/rejected", func(r *RootState) {
		r.Session.Status.Fail(f)
	})
	metrics.ActionFailuresTotal.WithLabelValues(sessionSlice).Inc()
}

// Login authenticates and, on success, installs both user and token.
func (s *SessionSlice) Login(ctx context.Context, in ports.LoginInput) (*domain.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("login")
	payload, err := s.api.Login(ctx, in)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("login", f)
		return nil, f
	}
	s.st.dispatch(sessionSlice, "login/fulfilled", func(r *RootState) {
		r.Session.Status.Resolve()
		u := payload.User
		r.Session.User = &u
		r.Session.Token = payload.Token
	})
	u := payload.User
	return &u, nil
}

// Signup registers a new account and logs it in.
func (s *SessionSlice) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("signup")
	payload, err := s.api.Signup(ctx, in)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("signup", f)
		return nil, f
	}
	s.st.dispatch(sessionSlice, "signup/fulfilled", func(r *RootState) {
		r.Session.Status.Resolve()
		u := payload.User
		r.Session.User = &u
		r.Session.Token = payload.Token
	})
	u := payload.User
	return &u, nil
}

// Edit updates the viewer's own profile. The token is retained; only the
// user is replaced.
func (s *SessionSlice) Edit(ctx context.Context, in ports.UserEditInput) (*domain.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("edit")
	user, err := s.api.Edit(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("edit", f)
		return nil, f
	}
	s.st.dispatch(sessionSlice, "edit/fulfilled", func(r *RootState) {
		r.Session.Status.Resolve()
		u := *user
		r.Session.User = &u
	})
	return user, nil
}

// Remove deletes the viewer's own account and clears the session.
func (s *SessionSlice) Remove(ctx context.Context, id string) (*domain.User, error) {
	s.pending("remove")
	user, err := s.api.Remove(ctx, id, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("remove", f)
		return nil, f
	}
	s.st.dispatch(sessionSlice, "remove/fulfilled", func(r *RootState) {
		r.Session.Status.Resolve()
		r.Session.User = nil
		r.Session.Token = ""
	})
	return user, nil
}

// ResetUser logs out locally: user and token are cleared together, no
// network call is made.
func (s *SessionSlice) ResetUser() {
	s.st.dispatch(sessionSlice, "resetUser", func(r *RootState) {
		r.Session.User = nil
		r.Session.Token = ""
	})
}

// ResetError acknowledges the recorded failure.
func (s *SessionSlice) ResetError() {
	s.st.dispatch(sessionSlice, "resetError", func(r *RootState) {
		r.Session.Status.ResetErr()
	})
}

// User returns a copy of the authenticated user, or nil.
func (s *SessionSlice) User() *domain.User { return s.st.CurrentUser() }

// Token returns the bearer token, or "" when logged out.
func (s *SessionSlice) Token() string { return s.st.Token() }

func (s *SessionSlice) Loading() bool {
	var v bool
	s.st.view(func(r *RootState) { v = r.Session.Status.Loading })
	return v
}

func (s *SessionSlice) Err() *state.Fault {
	var f *state.Fault
	s.st.view(func(r *RootState) { f = r.Session.Status.Err })
	return f
}

package store

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/core/state"
	"github.com/supportdesk/deskclient/internal/pkg/validate"
	"github.com/supportdesk/deskclient/internal/store/metrics"
)

const userSlice = "user"

// UserSlice owns the account collection shown to administrators. The
// viewer's own account never appears in it; ListAll filters it out so the
// admin table offers no self-destructive rows.
type UserSlice struct {
	st  *Store
	api ports.UserAPI
}

func (s *UserSlice) pending(op string) {
	s.st.dispatch(userSlice, op+"/pending", func(r *RootState) {
		r.User.Status.Begin()
	})
}

func (s *UserSlice) rejected(op string, f *state.Fault) {
	s.st.dispatch(userSlice, op+"/rejected", func(r *RootState) {
		r.User.Status.Fail(f)
	})
	metrics.ActionFailuresTotal.WithLabelValues(userSlice).Inc()
}

// ListAll replaces the collection with every account except the viewer's.
func (s *UserSlice) ListAll(ctx context.Context) ([]domain.User, error) {
	viewerID := ""
	if u := s.st.CurrentUser(); u != nil {
		viewerID = u.ID
	}

	s.pending("listAll")
	users, err := s.api.ListAll(ctx)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("listAll", f)
		return nil, f
	}

	filtered := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != viewerID {
			filtered = append(filtered, u)
		}
	}

	s.st.dispatch(userSlice, "listAll/fulfilled", func(r *RootState) {
		r.User.Status.Resolve()
		r.User.Items.ReplaceAll(filtered)
	})
	return filtered, nil
}

// Add creates an account on behalf of an administrator. The backend issues
// a token for the new account; only the user lands in the collection.
func (s *UserSlice) Add(ctx context.Context, in ports.UserAddInput) (*domain.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("add")
	payload, err := s.api.Add(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("add", f)
		return nil, f
	}
	s.st.dispatch(userSlice, "add/fulfilled", func(r *RootState) {
		r.User.Status.Resolve()
		r.User.Items.Append(payload.User)
	})
	u := payload.User
	return &u, nil
}

// Edit updates an account; the result replaces the stale entry.
func (s *UserSlice) Edit(ctx context.Context, in ports.UserEditInput) (*domain.User, error) {
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
	s.st.dispatch(userSlice, "edit/fulfilled", func(r *RootState) {
		r.User.Status.Resolve()
		r.User.Items.Upsert(*user)
	})
	return user, nil
}

// Remove deletes an account and drops it from the collection.
func (s *UserSlice) Remove(ctx context.Context, id string) (*domain.User, error) {
	s.pending("remove")
	user, err := s.api.Remove(ctx, id, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("remove", f)
		return nil, f
	}
	s.st.dispatch(userSlice, "remove/fulfilled", func(r *RootState) {
		r.User.Status.Resolve()
		r.User.Items.Remove(user.ID)
	})
	return user, nil
}

// ResetUsers empties the collection without a network call.
func (s *UserSlice) ResetUsers() {
	s.st.dispatch(userSlice, "resetUsers", func(r *RootState) {
		r.User.Items.Reset()
	})
}

// ResetError acknowledges the recorded failure.
func (s *UserSlice) ResetError() {
	s.st.dispatch(userSlice, "resetError", func(r *RootState) {
		r.User.Status.ResetErr()
	})
}

// Users returns a copy of the collection in order.
func (s *UserSlice) Users() []domain.User {
	var items []domain.User
	s.st.view(func(r *RootState) { items = r.User.Items.Items() })
	return items
}

func (s *UserSlice) Loading() bool {
	var v bool
	s.st.view(func(r *RootState) { v = r.User.Status.Loading })
	return v
}

func (s *UserSlice) Err() *state.Fault {
	var f *state.Fault
	s.st.view(func(r *RootState) { f = r.User.Status.Err })
	return f
}

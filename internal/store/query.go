package store

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/core/state"
	"github.com/supportdesk/deskclient/internal/pkg/validate"
	"github.com/supportdesk/deskclient/internal/store/metrics"
)

const querySlice = "query"

// QuerySlice owns the support-query collection. Replies and the tagging
// operation return the whole updated query, which upserts over the stale
// entry. A tag removed from the tag slice may still be referenced here;
// the dangling reference is left for readers to resolve.
type QuerySlice struct {
	st  *Store
	api ports.QueryAPI
}

func (s *QuerySlice) pending(op string) {
	s.st.dispatch(querySlice, op+"/pending", func(r *RootState) {
		r.Query.Status.Begin()
	})
}

func (s *QuerySlice) rejected(op string, f *state.Fault) {
	s.st.dispatch(querySlice, op+"/rejected", func(r *RootState) {
		r.Query.Status.Fail(f)
	})
	metrics.ActionFailuresTotal.WithLabelValues(querySlice).Inc()
}

// ListAll replaces the collection with every query in the system.
func (s *QuerySlice) ListAll(ctx context.Context) ([]domain.Query, error) {
	s.pending("listAll")
	queries, err := s.api.ListAll(ctx)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("listAll", f)
		return nil, f
	}
	s.st.dispatch(querySlice, "listAll/fulfilled", func(r *RootState) {
		r.Query.Status.Resolve()
		r.Query.Items.ReplaceAll(queries)
	})
	return queries, nil
}

// ListForCustomer replaces the collection with one customer's queries.
func (s *QuerySlice) ListForCustomer(ctx context.Context, customerID string) ([]domain.Query, error) {
	s.pending("listForCustomer")
	queries, err := s.api.ListForCustomer(ctx, customerID)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("listForCustomer", f)
		return nil, f
	}
	s.st.dispatch(querySlice, "listForCustomer/fulfilled", func(r *RootState) {
		r.Query.Status.Resolve()
		r.Query.Items.ReplaceAll(queries)
	})
	return queries, nil
}

// Add raises a new query.
func (s *QuerySlice) Add(ctx context.Context, in ports.QueryInput) (*domain.Query, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("add")
	q, err := s.api.Add(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("add", f)
		return nil, f
	}
	s.st.dispatch(querySlice, "add/fulfilled", func(r *RootState) {
		r.Query.Status.Resolve()
		r.Query.Items.Append(*q)
	})
	return q, nil
}

// Reply appends a staff reply; the updated query replaces the stale entry.
func (s *QuerySlice) Reply(ctx context.Context, in ports.ReplyInput) (*domain.Query, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("reply")
	q, err := s.api.Reply(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("reply", f)
		return nil, f
	}
	s.st.dispatch(querySlice, "reply/fulfilled", func(r *RootState) {
		r.Query.Status.Resolve()
		r.Query.Items.Upsert(*q)
	})
	return q, nil
}

// Tag replaces a query's tag set wholesale; the updated query replaces the
// stale entry.
func (s *QuerySlice) Tag(ctx context.Context, in ports.TagInput) (*domain.Query, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("tag")
	q, err := s.api.Tag(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("tag", f)
		return nil, f
	}
	s.st.dispatch(querySlice, "tag/fulfilled", func(r *RootState) {
		r.Query.Status.Resolve()
		r.Query.Items.Upsert(*q)
	})
	return q, nil
}

// ResetQueries empties the collection without a network call.
func (s *QuerySlice) ResetQueries() {
	s.st.dispatch(querySlice, "resetQueries", func(r *RootState) {
		r.Query.Items.Reset()
	})
}

// ResetError acknowledges the recorded failure.
func (s *QuerySlice) ResetError() {
	s.st.dispatch(querySlice, "resetError", func(r *RootState) {
		r.Query.Status.ResetErr()
	})
}

// Queries returns a copy of the collection in order.
func (s *QuerySlice) Queries() []domain.Query {
	var items []domain.Query
	s.st.view(func(r *RootState) { items = r.Query.Items.Items() })
	return items
}

func (s *QuerySlice) Loading() bool {
	var v bool
	s.st.view(func(r *RootState) { v = r.Query.Status.Loading })
	return v
}

func (s *QuerySlice) Err() *state.Fault {
	var f *state.Fault
	s.st.view(func(r *RootState) { f = r.Query.Status.Err })
	return f
}

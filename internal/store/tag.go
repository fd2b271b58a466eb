package store

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/core/state"
	"github.com/supportdesk/deskclient/internal/pkg/validate"
	"github.com/supportdesk/deskclient/internal/store/metrics"
)

const tagSlice = "tag"

// TagSlice owns the tag catalogue.
type TagSlice struct {
	st  *Store
	api ports.TagAPI
}

func (s *TagSlice) pending(op string) {
	s.st.dispatch(tagSlice, op+"/pending", func(r *RootState) {
		r.Tag.Status.Begin()
	})
}

func (s *TagSlice) rejected(op string, f *state.Fault) {
	s.st.dispatch(tagSlice, op+"/rejected", func(r *RootState) {
		r.Tag.Status.Fail(f)
	})
	metrics.ActionFailuresTotal.WithLabelValues(tagSlice).Inc()
}

// ListAll replaces the collection with every tag.
func (s *TagSlice) ListAll(ctx context.Context) ([]domain.Tag, error) {
	s.pending("listAll")
	tags, err := s.api.ListAll(ctx)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("listAll", f)
		return nil, f
	}
	s.st.dispatch(tagSlice, "listAll/fulfilled", func(r *RootState) {
		r.Tag.Status.Resolve()
		r.Tag.Items.ReplaceAll(tags)
	})
	return tags, nil
}

// Add creates a tag with the given name.
func (s *TagSlice) Add(ctx context.Context, in ports.TagAddInput) (*domain.Tag, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("add")
	tag, err := s.api.Add(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("add", f)
		return nil, f
	}
	s.st.dispatch(tagSlice, "add/fulfilled", func(r *RootState) {
		r.Tag.Status.Resolve()
		r.Tag.Items.Append(*tag)
	})
	return tag, nil
}

// Remove deletes a tag. Queries referencing the removed tag keep the
// dangling reference; no cascade happens here.
func (s *TagSlice) Remove(ctx context.Context, id string) (*domain.Tag, error) {
	s.pending("remove")
	tag, err := s.api.Remove(ctx, id, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("remove", f)
		return nil, f
	}
	s.st.dispatch(tagSlice, "remove/fulfilled", func(r *RootState) {
		r.Tag.Status.Resolve()
		r.Tag.Items.Remove(tag.ID)
	})
	return tag, nil
}

// ResetTags empties the collection without a network call.
func (s *TagSlice) ResetTags() {
	s.st.dispatch(tagSlice, "resetTags", func(r *RootState) {
		r.Tag.Items.Reset()
	})
}

// ResetError acknowledges the recorded failure.
func (s *TagSlice) ResetError() {
	s.st.dispatch(tagSlice, "resetError", func(r *RootState) {
		r.Tag.Status.ResetErr()
	})
}

// Tags returns a copy of the collection in order.
func (s *TagSlice) Tags() []domain.Tag {
	var items []domain.Tag
	s.st.view(func(r *RootState) { items = r.Tag.Items.Items() })
	return items
}

func (s *TagSlice) Loading() bool {
	var v bool
	s.st.view(func(r *RootState) { v = r.Tag.Status.Loading })
	return v
}

func (s *TagSlice) Err() *state.Fault {
	var f *state.Fault
	s.st.view(func(r *RootState) { f = r.Tag.Status.Err })
	return f
}

package store

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/core/state"
	"github.com/supportdesk/deskclient/internal/pkg/validate"
	"github.com/supportdesk/deskclient/internal/store/metrics"
)

const meetingSlice = "meeting"

// MeetingSlice owns the meeting collection. Meetings only grow; the client
// defines no edit or remove operation.
type MeetingSlice struct {
	st  *Store
	api ports.MeetingAPI
}

func (s *MeetingSlice) pending(op string) {
	s.st.dispatch(meetingSlice, op+"/pending", func(r *RootState) {
		r.Meeting.Status.Begin()
	})
}

func (s *MeetingSlice) rejected(op string, f *state.Fault) {
	s.st.dispatch(meetingSlice, op+"/rejected", func(r *RootState) {
		r.Meeting.Status.Fail(f)
	})
	metrics.ActionFailuresTotal.WithLabelValues(meetingSlice).Inc()
}

// ListAll replaces the collection with every meeting.
func (s *MeetingSlice) ListAll(ctx context.Context) ([]domain.Meeting, error) {
	s.pending("listAll")
	meetings, err := s.api.ListAll(ctx)
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("listAll", f)
		return nil, f
	}
	s.st.dispatch(meetingSlice, "listAll/fulfilled", func(r *RootState) {
		r.Meeting.Status.Resolve()
		r.Meeting.Items.ReplaceAll(meetings)
	})
	return meetings, nil
}

// Add records a meeting.
func (s *MeetingSlice) Add(ctx context.Context, in ports.MeetingInput) (*domain.Meeting, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	s.pending("add")
	m, err := s.api.Add(ctx, in, s.st.Token())
	if err != nil {
		f := state.FaultFrom(err)
		s.rejected("add", f)
		return nil, f
	}
	s.st.dispatch(meetingSlice, "add/fulfilled", func(r *RootState) {
		r.Meeting.Status.Resolve()
		r.Meeting.Items.Append(*m)
	})
	return m, nil
}

// ResetMeetings empties the collection without a network call.
func (s *MeetingSlice) ResetMeetings() {
	s.st.dispatch(meetingSlice, "resetMeetings", func(r *RootState) {
		r.Meeting.Items.Reset()
	})
}

// ResetError acknowledges the recorded failure.
func (s *MeetingSlice) ResetError() {
	s.st.dispatch(meetingSlice, "resetError", func(r *RootState) {
		r.Meeting.Status.ResetErr()
	})
}

// Meetings returns a copy of the collection in order.
func (s *MeetingSlice) Meetings() []domain.Meeting {
	var items []domain.Meeting
	s.st.view(func(r *RootState) { items = r.Meeting.Items.Items() })
	return items
}

func (s *MeetingSlice) Loading() bool {
	var v bool
	s.st.view(func(r *RootState) { v = r.Meeting.Status.Loading })
	return v
}

func (s *MeetingSlice) Err() *state.Fault {
	var f *state.Fault
	s.st.view(func(r *RootState) { f = r.Meeting.Status.Err })
	return f
}

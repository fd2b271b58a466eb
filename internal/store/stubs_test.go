package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/store/persist"
)

type stubSessionAPI struct {
	loginFn  func(ctx context.Context, in ports.LoginInput) (*ports.SessionPayload, error)
	signupFn func(ctx context.Context, in ports.SignupInput) (*ports.SessionPayload, error)
	editFn   func(ctx context.Context, in ports.UserEditInput, token string) (*domain.User, error)
	removeFn func(ctx context.Context, id, token string) (*domain.User, error)
}

func (s *stubSessionAPI) Login(ctx context.Context, in ports.LoginInput) (*ports.SessionPayload, error) {
	return s.loginFn(ctx, in)
}

func (s *stubSessionAPI) Signup(ctx context.Context, in ports.SignupInput) (*ports.SessionPayload, error) {
	return s.signupFn(ctx, in)
}

func (s *stubSessionAPI) Edit(ctx context.Context, in ports.UserEditInput, token string) (*domain.User, error) {
	return s.editFn(ctx, in, token)
}

func (s *stubSessionAPI) Remove(ctx context.Context, id, token string) (*domain.User, error) {
	return s.removeFn(ctx, id, token)
}

type stubQueryAPI struct {
	listAllFn         func(ctx context.Context) ([]domain.Query, error)
	listForCustomerFn func(ctx context.Context, customerID string) ([]domain.Query, error)
	addFn             func(ctx context.Context, in ports.QueryInput, token string) (*domain.Query, error)
	replyFn           func(ctx context.Context, in ports.ReplyInput, token string) (*domain.Query, error)
	tagFn             func(ctx context.Context, in ports.TagInput, token string) (*domain.Query, error)
}

func (s *stubQueryAPI) ListAll(ctx context.Context) ([]domain.Query, error) {
	return s.listAllFn(ctx)
}

func (s *stubQueryAPI) ListForCustomer(ctx context.Context, customerID string) ([]domain.Query, error) {
	return s.listForCustomerFn(ctx, customerID)
}

func (s *stubQueryAPI) Add(ctx context.Context, in ports.QueryInput, token string) (*domain.Query, error) {
	return s.addFn(ctx, in, token)
}

func (s *stubQueryAPI) Reply(ctx context.Context, in ports.ReplyInput, token string) (*domain.Query, error) {
	return s.replyFn(ctx, in, token)
}

func (s *stubQueryAPI) Tag(ctx context.Context, in ports.TagInput, token string) (*domain.Query, error) {
	return s.tagFn(ctx, in, token)
}

type stubTagAPI struct {
	listAllFn func(ctx context.Context) ([]domain.Tag, error)
	addFn     func(ctx context.Context, in ports.TagAddInput, token string) (*domain.Tag, error)
	removeFn  func(ctx context.Context, id, token string) (*domain.Tag, error)
}

func (s *stubTagAPI) ListAll(ctx context.Context) ([]domain.Tag, error) {
	return s.listAllFn(ctx)
}

func (s *stubTagAPI) Add(ctx context.Context, in ports.TagAddInput, token string) (*domain.Tag, error) {
	return s.addFn(ctx, in, token)
}

func (s *stubTagAPI) Remove(ctx context.Context, id, token string) (*domain.Tag, error) {
	return s.removeFn(ctx, id, token)
}

type stubUserAPI struct {
	listAllFn func(ctx context.Context) ([]domain.User, error)
	addFn     func(ctx context.Context, in ports.UserAddInput, token string) (*ports.SessionPayload, error)
	editFn    func(ctx context.Context, in ports.UserEditInput, token string) (*domain.User, error)
	removeFn  func(ctx context.Context, id, token string) (*domain.User, error)
}

func (s *stubUserAPI) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.listAllFn(ctx)
}

func (s *stubUserAPI) Add(ctx context.Context, in ports.UserAddInput, token string) (*ports.SessionPayload, error) {
	return s.addFn(ctx, in, token)
}

func (s *stubUserAPI) Edit(ctx context.Context, in ports.UserEditInput, token string) (*domain.User, error) {
	return s.editFn(ctx, in, token)
}

func (s *stubUserAPI) Remove(ctx context.Context, id, token string) (*domain.User, error) {
	return s.removeFn(ctx, id, token)
}

type stubMeetingAPI struct {
	listAllFn func(ctx context.Context) ([]domain.Meeting, error)
	addFn     func(ctx context.Context, in ports.MeetingInput, token string) (*domain.Meeting, error)
}

func (s *stubMeetingAPI) ListAll(ctx context.Context) ([]domain.Meeting, error) {
	return s.listAllFn(ctx)
}

func (s *stubMeetingAPI) Add(ctx context.Context, in ports.MeetingInput, token string) (*domain.Meeting, error) {
	return s.addFn(ctx, in, token)
}

func newTestStore(t *testing.T, apis APIs, engine persist.Engine) *Store {
	t.Helper()
	if engine == nil {
		engine = persist.NewMemory()
	}
	s, err := New(context.Background(), apis, engine, zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func loggedInStore(t *testing.T, user domain.User, token string, apis APIs) *Store {
	t.Helper()
	apis.Session = &stubSessionAPI{
		loginFn: func(_ context.Context, _ ports.LoginInput) (*ports.SessionPayload, error) {
			return &ports.SessionPayload{User: user, Token: token}, nil
		},
	}
	s := newTestStore(t, apis, nil)
	if _, err := s.Session.Login(context.Background(), ports.LoginInput{
		Email:    user.Email,
		Password: "pass123",
	}); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}

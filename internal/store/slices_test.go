package store

import (
	"context"
	"testing"
	"time"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/core/ports"
	"github.com/supportdesk/deskclient/internal/core/state"
)

func TestSessionSlice_LoginInstallsUserAndToken(t *testing.T) {
	admin := domain.User{ID: "u1", FirstName: "Ada", Email: "ada@desk.io", Role: domain.RoleAdmin}
	s := loggedInStore(t, admin, "tkn-1", APIs{})

	u := s.Session.User()
	if u == nil || u.ID != "u1" {
		t.Fatalf("expected user installed, got %+v", u)
	}
	if got := s.Session.Token(); got != "tkn-1" {
		t.Fatalf("expected token installed, got %q", got)
	}
	if s.Session.Loading() || s.Session.Err() != nil {
		t.Fatalf("expected settled status, got loading=%v err=%+v",
			s.Session.Loading(), s.Session.Err())
	}
}

func TestSessionSlice_LoginRejected(t *testing.T) {
	s := newTestStore(t, APIs{
		Session: &stubSessionAPI{
			loginFn: func(_ context.Context, _ ports.LoginInput) (*ports.SessionPayload, error) {
				return nil, state.ServerFault("Invalid credentials")
			},
		},
	}, nil)

	_, err := s.Session.Login(context.Background(), ports.LoginInput{Email: "ada@desk.io", Password: "wrong1"})
	if err == nil {
		t.Fatalf("expected login failure")
	}
	f := s.Session.Err()
	if f == nil || !f.Known || f.Message != "Invalid credentials" {
		t.Fatalf("expected recorded server fault, got %+v", f)
	}
	if s.Session.Loading() {
		t.Fatalf("expected loading cleared after rejection")
	}
	if s.Session.User() != nil || s.Session.Token() != "" {
		t.Fatalf("expected session untouched by rejected login")
	}

	s.Session.ResetError()
	if s.Session.Err() != nil {
		t.Fatalf("expected error acknowledged")
	}
}

func TestSessionSlice_ValidationLeavesStateUntouched(t *testing.T) {
	called := false
	s := newTestStore(t, APIs{
		Session: &stubSessionAPI{
			loginFn: func(_ context.Context, _ ports.LoginInput) (*ports.SessionPayload, error) {
				called = true
				return nil, nil
			},
		},
	}, nil)

	_, err := s.Session.Login(context.Background(), ports.LoginInput{Email: "not-an-email", Password: "pass12"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if called {
		t.Fatalf("expected no network call for invalid input")
	}
	if s.Session.Loading() || s.Session.Err() != nil {
		t.Fatalf("expected state untouched, got loading=%v err=%+v",
			s.Session.Loading(), s.Session.Err())
	}
}

func TestSessionSlice_EditKeepsToken(t *testing.T) {
	admin := domain.User{ID: "u1", FirstName: "Ada", Email: "ada@desk.io", Role: domain.RoleAdmin}
	var seenToken string
	s := loggedInStore(t, admin, "tkn-1", APIs{})
	s.Session.api.(*stubSessionAPI).editFn = func(_ context.Context, in ports.UserEditInput, token string) (*domain.User, error) {
		seenToken = token
		return &domain.User{ID: in.ID, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Role: in.Role}, nil
	}

	_, err := s.Session.Edit(context.Background(), ports.UserEditInput{
		ID: "u1", FirstName: "Adelaide", LastName: "L", Email: "ada@desk.io", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if seenToken != "tkn-1" {
		t.Fatalf("expected session token forwarded, got %q", seenToken)
	}
	if u := s.Session.User(); u == nil || u.FirstName != "Adelaide" {
		t.Fatalf("expected user replaced, got %+v", u)
	}
	if s.Session.Token() != "tkn-1" {
		t.Fatalf("expected token retained across profile edit")
	}
}

func TestSessionSlice_RemoveClearsSession(t *testing.T) {
	admin := domain.User{ID: "u1", FirstName: "Ada", Email: "ada@desk.io", Role: domain.RoleAdmin}
	s := loggedInStore(t, admin, "tkn-1", APIs{})
	s.Session.api.(*stubSessionAPI).removeFn = func(_ context.Context, id, _ string) (*domain.User, error) {
		return &domain.User{ID: id}, nil
	}

	if _, err := s.Session.Remove(context.Background(), "u1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.Session.User() != nil || s.Session.Token() != "" {
		t.Fatalf("expected session cleared after account removal")
	}
}

func TestSessionSlice_ResetUser(t *testing.T) {
	admin := domain.User{ID: "u1", Email: "ada@desk.io", Role: domain.RoleAdmin}
	s := loggedInStore(t, admin, "tkn-1", APIs{})

	s.Session.ResetUser()
	if s.Session.User() != nil || s.Session.Token() != "" {
		t.Fatalf("expected user and token cleared together")
	}
}

func TestTagSlice_AddRejectedKeepsCollection(t *testing.T) {
	s := newTestStore(t, APIs{
		Tag: &stubTagAPI{
			listAllFn: func(_ context.Context) ([]domain.Tag, error) {
				return []domain.Tag{{ID: "t1", Name: "urgent"}}, nil
			},
			addFn: func(_ context.Context, _ ports.TagAddInput, _ string) (*domain.Tag, error) {
				return nil, state.ServerFault("Tag exists")
			},
		},
	}, nil)
	ctx := context.Background()

	if _, err := s.Tag.ListAll(ctx); err != nil {
		t.Fatalf("list tags: %v", err)
	}
	_, err := s.Tag.Add(ctx, ports.TagAddInput{Name: "urgent"})
	if err == nil {
		t.Fatalf("expected duplicate tag rejected")
	}
	if f := s.Tag.Err(); f == nil || f.Message != "Tag exists" {
		t.Fatalf("expected recorded fault, got %+v", f)
	}
	if s.Tag.Loading() {
		t.Fatalf("expected loading cleared after rejection")
	}
	if tags := s.Tag.Tags(); len(tags) != 1 || tags[0].ID != "t1" {
		t.Fatalf("expected collection unchanged, got %+v", tags)
	}
}

func TestTagSlice_AddAndRemove(t *testing.T) {
	s := newTestStore(t, APIs{
		Tag: &stubTagAPI{
			addFn: func(_ context.Context, in ports.TagAddInput, _ string) (*domain.Tag, error) {
				return &domain.Tag{ID: "t9", Name: in.Name}, nil
			},
			removeFn: func(_ context.Context, id, _ string) (*domain.Tag, error) {
				return &domain.Tag{ID: id}, nil
			},
		},
	}, nil)
	ctx := context.Background()

	if _, err := s.Tag.Add(ctx, ports.TagAddInput{Name: "refund"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if tags := s.Tag.Tags(); len(tags) != 1 || tags[0].Name != "refund" {
		t.Fatalf("expected appended tag, got %+v", tags)
	}

	if _, err := s.Tag.Remove(ctx, "t9"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if tags := s.Tag.Tags(); len(tags) != 0 {
		t.Fatalf("expected empty collection, got %+v", tags)
	}
}

func TestQuerySlice_TagReplacesEntry(t *testing.T) {
	q1 := domain.Query{ID: "q1", Title: "Refund", Tags: []domain.Tag{{ID: "t0", Name: "old"}}}
	q2 := domain.Query{ID: "q2", Title: "Shipping"}
	s := newTestStore(t, APIs{
		Query: &stubQueryAPI{
			listAllFn: func(_ context.Context) ([]domain.Query, error) {
				return []domain.Query{q1, q2}, nil
			},
			tagFn: func(_ context.Context, in ports.TagInput, _ string) (*domain.Query, error) {
				q := q1
				q.Tags = make([]domain.Tag, 0, len(in.Tags))
				for _, id := range in.Tags {
					q.Tags = append(q.Tags, domain.Tag{ID: id})
				}
				return &q, nil
			},
		},
	}, nil)
	ctx := context.Background()

	if _, err := s.Query.ListAll(ctx); err != nil {
		t.Fatalf("list queries: %v", err)
	}
	if _, err := s.Query.Tag(ctx, ports.TagInput{QueryID: "q1", Tags: []string{"t1", "t2"}}); err != nil {
		t.Fatalf("tag query: %v", err)
	}

	queries := s.Query.Queries()
	if len(queries) != 2 {
		t.Fatalf("expected two queries, got %+v", queries)
	}
	// The updated entry replaces the stale one and moves to the end.
	if queries[0].ID != "q2" || queries[1].ID != "q1" {
		t.Fatalf("expected q1 upserted to the end, got [%s %s]", queries[0].ID, queries[1].ID)
	}
	got := queries[1].Tags
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t2" {
		t.Fatalf("expected tag set replaced wholesale, got %+v", got)
	}
}

func TestQuerySlice_ReplyUpserts(t *testing.T) {
	q1 := domain.Query{ID: "q1", Title: "Refund"}
	staff := domain.User{ID: "u2", FirstName: "Sam", Role: domain.RoleUser}
	s := newTestStore(t, APIs{
		Query: &stubQueryAPI{
			listAllFn: func(_ context.Context) ([]domain.Query, error) {
				return []domain.Query{q1}, nil
			},
			replyFn: func(_ context.Context, in ports.ReplyInput, _ string) (*domain.Query, error) {
				q := q1
				q.Replies = []domain.Reply{{ID: "r1", Content: in.Content, By: staff}}
				return &q, nil
			},
		},
	}, nil)
	ctx := context.Background()

	if _, err := s.Query.ListAll(ctx); err != nil {
		t.Fatalf("list queries: %v", err)
	}
	if _, err := s.Query.Reply(ctx, ports.ReplyInput{QueryID: "q1", Content: "On it."}); err != nil {
		t.Fatalf("reply: %v", err)
	}

	queries := s.Query.Queries()
	if len(queries) != 1 || len(queries[0].Replies) != 1 {
		t.Fatalf("expected one query with one reply, got %+v", queries)
	}
	if r := queries[0].Replies[0]; r.Content != "On it." || r.By.ID != "u2" {
		t.Fatalf("unexpected reply %+v", r)
	}
}

func TestUserSlice_ListAllExcludesViewer(t *testing.T) {
	admin := domain.User{ID: "u1", Email: "ada@desk.io", Role: domain.RoleAdmin}
	s := loggedInStore(t, admin, "tkn-1", APIs{
		User: &stubUserAPI{
			listAllFn: func(_ context.Context) ([]domain.User, error) {
				return []domain.User{
					admin,
					{ID: "u2", Email: "sam@desk.io", Role: domain.RoleUser},
					{ID: "u3", Email: "cus@mail.io", Role: domain.RoleCustomer},
				}, nil
			},
		},
	})

	got, err := s.User.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected viewer filtered out, got %+v", got)
	}
	for _, u := range s.User.Users() {
		if u.ID == "u1" {
			t.Fatalf("viewer leaked into the collection: %+v", u)
		}
	}
}

func TestUserSlice_AddDiscardsIssuedToken(t *testing.T) {
	admin := domain.User{ID: "u1", Email: "ada@desk.io", Role: domain.RoleAdmin}
	s := loggedInStore(t, admin, "tkn-1", APIs{
		User: &stubUserAPI{
			addFn: func(_ context.Context, in ports.UserAddInput, _ string) (*ports.SessionPayload, error) {
				return &ports.SessionPayload{
					User:  domain.User{ID: "u9", FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Role: in.Role},
					Token: "token-for-new-account",
				}, nil
			},
		},
	})

	_, err := s.User.Add(context.Background(), ports.UserAddInput{
		FirstName: "New", LastName: "Agent", Email: "new@desk.io",
		Password: "secret1", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("add user: %v", err)
	}
	if users := s.User.Users(); len(users) != 1 || users[0].ID != "u9" {
		t.Fatalf("expected new account appended, got %+v", users)
	}
	// The viewer's own session must be untouched by an admin-created account.
	if s.Session.Token() != "tkn-1" {
		t.Fatalf("expected admin session token retained, got %q", s.Session.Token())
	}
	if u := s.Session.User(); u == nil || u.ID != "u1" {
		t.Fatalf("expected admin identity retained, got %+v", u)
	}
}

func TestMeetingSlice_ListAndAdd(t *testing.T) {
	when := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	s := newTestStore(t, APIs{
		Meeting: &stubMeetingAPI{
			listAllFn: func(_ context.Context) ([]domain.Meeting, error) {
				return []domain.Meeting{{ID: "m1", Date: when, Subject: "Kickoff"}}, nil
			},
			addFn: func(_ context.Context, in ports.MeetingInput, _ string) (*domain.Meeting, error) {
				return &domain.Meeting{ID: "m2", Date: in.Date, Subject: in.Subject, Notes: in.Notes}, nil
			},
		},
	}, nil)
	ctx := context.Background()

	if _, err := s.Meeting.ListAll(ctx); err != nil {
		t.Fatalf("list meetings: %v", err)
	}
	if _, err := s.Meeting.Add(ctx, ports.MeetingInput{Date: when.Add(24 * time.Hour), Subject: "Escalation"}); err != nil {
		t.Fatalf("add meeting: %v", err)
	}

	meetings := s.Meeting.Meetings()
	if len(meetings) != 2 || meetings[0].ID != "m1" || meetings[1].ID != "m2" {
		t.Fatalf("expected meeting appended in order, got %+v", meetings)
	}
}

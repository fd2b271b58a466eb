package guard

import (
	"testing"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

type stubSession struct {
	token string
	user  *domain.User
}

func (s stubSession) Token() string             { return s.token }
func (s stubSession) CurrentUser() *domain.User { return s.user }

func TestRequireAuth_Redirects(t *testing.T) {
	d := RequireAuth(stubSession{}, "/queries")
	if d.Allow {
		t.Fatalf("expected redirect for anonymous viewer")
	}
	if d.RedirectTo != LoginRoute {
		t.Fatalf("expected redirect to %s, got %s", LoginRoute, d.RedirectTo)
	}
	if d.From != "/queries" {
		t.Fatalf("expected originating location recorded, got %q", d.From)
	}
}

func TestRequireAuth_Allows(t *testing.T) {
	d := RequireAuth(stubSession{token: "tkn"}, "/queries")
	if !d.Allow {
		t.Fatalf("expected authenticated viewer admitted, got %+v", d)
	}
}

func TestRequireAnonymous_Redirects(t *testing.T) {
	d := RequireAnonymous(stubSession{token: "tkn"}, "/login")
	if d.Allow {
		t.Fatalf("expected redirect for authenticated viewer")
	}
	if d.RedirectTo != HomeRoute {
		t.Fatalf("expected redirect to %s, got %s", HomeRoute, d.RedirectTo)
	}
}

func TestRequireAnonymous_Allows(t *testing.T) {
	d := RequireAnonymous(stubSession{}, "/login")
	if !d.Allow {
		t.Fatalf("expected anonymous viewer admitted, got %+v", d)
	}
}

func TestRequireRole(t *testing.T) {
	admin := &domain.User{ID: "u1", Role: domain.RoleAdmin}
	customer := &domain.User{ID: "u2", Role: domain.RoleCustomer}

	d := RequireRole(stubSession{token: "tkn", user: admin}, "/users", domain.Role.CanManageUsers)
	if !d.Allow {
		t.Fatalf("expected admin admitted, got %+v", d)
	}

	d = RequireRole(stubSession{token: "tkn", user: customer}, "/users", domain.Role.CanManageUsers)
	if d.Allow || d.RedirectTo != HomeRoute {
		t.Fatalf("expected customer bounced home, got %+v", d)
	}

	// Unauthenticated wins over role: redirect goes to login.
	d = RequireRole(stubSession{}, "/users", domain.Role.CanManageUsers)
	if d.Allow || d.RedirectTo != LoginRoute {
		t.Fatalf("expected anonymous bounced to login, got %+v", d)
	}
}

// Package guard implements the two route predicates gating navigation.
// Both are pure synchronous functions of current session state: no network
// wait, no loading phase of their own.
package guard

import "github.com/supportdesk/deskclient/internal/core/domain"

const (
	// LoginRoute is where an unauthenticated viewer is sent.
	LoginRoute = "/login"
	// HomeRoute is the default authenticated view.
	HomeRoute = "/"
)

// SessionView is the read-only session access a guard needs. The state
// store satisfies it.
type SessionView interface {
	// Token returns the bearer token, or "" when logged out.
	Token() string
	// CurrentUser returns the authenticated user, or nil.
	CurrentUser() *domain.User
}

// Decision is a guard's verdict. When Allow is false, RedirectTo names the
// route to navigate to and From preserves the originally requested
// location for an optional post-login redirect.
type Decision struct {
	Allow      bool
	RedirectTo string
	From       string
}

// RequireAuth admits the viewer iff a session token is present; otherwise
// it redirects to the login route, recording where the viewer was headed.
func RequireAuth(v SessionView, from string) Decision {
	if v.Token() == "" {
		return Decision{RedirectTo: LoginRoute, From: from}
	}
	return Decision{Allow: true}
}

// RequireAnonymous admits the viewer iff no session token is present;
// an already-authenticated viewer is sent to the default view instead.
// It wraps login and signup.
func RequireAnonymous(v SessionView, from string) Decision {
	if v.Token() != "" {
		return Decision{RedirectTo: HomeRoute, From: from}
	}
	return Decision{Allow: true}
}

// RequireRole admits the viewer iff authenticated and the capability check
// passes for their role. It composes with RequireAuth for views such as
// user administration.
func RequireRole(v SessionView, from string, allowed func(domain.Role) bool) Decision {
	if d := RequireAuth(v, from); !d.Allow {
		return d
	}
	if u := v.CurrentUser(); u == nil || !allowed(u.Role) {
		return Decision{RedirectTo: HomeRoute, From: from}
	}
	return Decision{Allow: true}
}

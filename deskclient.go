// Package deskclient wires the support-desk state core: resource clients
// over the backend REST API, the five async slices, the persisted store
// they live in, and the route guards reading session state.
package deskclient

import (
	"context"

	"github.com/supportdesk/deskclient/internal/core/domain"
	"github.com/supportdesk/deskclient/internal/guard"
	"github.com/supportdesk/deskclient/internal/infrastructure/rest"
	"github.com/supportdesk/deskclient/internal/pkg/config"
	"github.com/supportdesk/deskclient/internal/store"
	"github.com/supportdesk/deskclient/internal/store/persist"
	"github.com/supportdesk/deskclient/pkg/logger"
)

// Open loads configuration from the environment, opens the selected persist
// engine, rehydrates the store and returns it ready for dispatch. The
// caller owns the store and must Close it to flush the final state.
func Open(ctx context.Context) (*store.Store, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	engine, err := persist.Open(ctx, cfg.Persist)
	if err != nil {
		return nil, err
	}

	client := rest.NewClient(cfg.ServerURL, cfg.HTTPTimeout, log)
	apis := store.APIs{
		Session: rest.NewSessionClient(client),
		Query:   rest.NewQueryClient(client),
		Tag:     rest.NewTagClient(client),
		User:    rest.NewUserClient(client),
		Meeting: rest.NewMeetingClient(client),
	}

	return store.New(ctx, apis, engine, log)
}

// RequireAuth gates a protected view on the session token.
func RequireAuth(s *store.Store, from string) guard.Decision {
	return guard.RequireAuth(s, from)
}

// RequireAnonymous gates login and signup against authenticated viewers.
func RequireAnonymous(s *store.Store, from string) guard.Decision {
	return guard.RequireAnonymous(s, from)
}

// RequireRole gates a view on a role capability, e.g.
// RequireRole(s, "/users", domain.Role.CanManageUsers).
func RequireRole(s *store.Store, from string, allowed func(domain.Role) bool) guard.Decision {
	return guard.RequireRole(s, from, allowed)
}

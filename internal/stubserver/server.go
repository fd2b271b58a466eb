// Package stubserver is an in-process fake of the support-desk backend
// used by integration tests. It implements the REST surface the resource
// clients consume, enforces the same role rules, and reports failures with
// the backend's `{err}` envelope.
package stubserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

// Backend holds the fake's entire data set in memory.
type Backend struct {
	mu     sync.Mutex
	secret string

	users    []domain.User
	hashes   map[string]string // user id -> bcrypt hash
	tags     []domain.Tag
	queries  []domain.Query
	meetings []domain.Meeting
}

// New creates an empty backend signing tokens with secret.
func New(secret string) *Backend {
	return &Backend{
		secret: secret,
		hashes: make(map[string]string),
	}
}

// Router builds the Echo instance with all routes registered.
func (b *Backend) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	authed := b.auth()

	e.POST("/users/login", b.login)
	e.POST("/users/signup", b.signup)
	e.GET("/users", b.listUsers)
	e.PUT("/users/:id", b.editUser, authed)
	e.DELETE("/users/:id", b.deleteUser, authed)

	e.GET("/tags", b.listTags)
	e.POST("/tags", b.addTag, authed)
	e.DELETE("/tags/:id", b.deleteTag, authed)

	e.GET("/queries", b.listQueries)
	e.GET("/queries/customer/:id", b.listCustomerQueries)
	e.POST("/queries", b.addQuery, authed)
	e.PUT("/queries/:id/reply", b.replyQuery, authed)
	e.PUT("/queries/:id/tag", b.tagQuery, authed)

	e.GET("/meetings", b.listMeetings)
	e.POST("/meetings", b.addMeeting, authed)

	return e
}

// Seed installs a user with a known password, bypassing signup. Returns
// the created user.
func (b *Backend) Seed(u domain.User, password string) domain.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	b.users = append(b.users, u)
	b.hashes[u.ID] = string(hash)
	return u
}

// Mint issues a token for an existing user, as login would.
func (b *Backend) Mint(u domain.User) string {
	token, _ := b.mint(u)
	return token
}

func (b *Backend) mint(u domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(b.secret))
}

// errJSON renders the backend's canonical error envelope.
func errJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"err": msg})
}

func (b *Backend) userByID(id string) (domain.User, bool) {
	for _, u := range b.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (b *Backend) userByEmail(email string) (domain.User, bool) {
	for _, u := range b.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// auth validates the bearer JWT and injects the requester into context.
func (b *Backend) auth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return errJSON(c, http.StatusUnauthorized, "missing authorization header")
			}
			const prefix = "Bearer "
			if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
				return errJSON(c, http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(header[len(prefix):], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(b.secret), nil
			})
			if err != nil || !tkn.Valid {
				return errJSON(c, http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			b.mu.Lock()
			requester, ok := b.userByID(sub)
			b.mu.Unlock()
			if !ok {
				return errJSON(c, http.StatusUnauthorized, "unknown account")
			}

			c.Set("requester", requester)
			return next(c)
		}
	}
}

func requester(c echo.Context) domain.User {
	u, _ := c.Get("requester").(domain.User)
	return u
}

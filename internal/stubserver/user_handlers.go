package stubserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	Country   string      `json:"country"`
	Zip       int         `json:"zip"`
	Role      domain.Role `json:"role"`
}

type sessionResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (b *Backend) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	b.mu.Lock()
	user, ok := b.userByEmail(req.Email)
	hash := b.hashes[user.ID]
	b.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return errJSON(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := b.mint(user)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "token error")
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user, Token: token})
}

func (b *Backend) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, "email and password required")
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return errJSON(c, http.StatusBadRequest, "invalid role")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.userByEmail(req.Email); exists {
		return errJSON(c, http.StatusConflict, "User exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "hash error")
	}

	user := domain.User{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		Zip:       req.Zip,
		Role:      role,
	}
	b.users = append(b.users, user)
	b.hashes[user.ID] = string(hash)

	token, err := b.mint(user)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "token error")
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user, Token: token})
}

func (b *Backend) listUsers(c echo.Context) error {
	b.mu.Lock()
	users := make([]domain.User, len(b.users))
	copy(users, b.users)
	b.mu.Unlock()
	return c.JSON(http.StatusOK, users)
}

func (b *Backend) editUser(c echo.Context) error {
	id := c.Param("id")
	req := requester(c)
	if req.ID != id && !req.Role.CanManageUsers() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	var in signupRequest
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, u := range b.users {
		if u.ID != id {
			continue
		}
		u.FirstName = in.FirstName
		u.LastName = in.LastName
		u.Email = in.Email
		u.Phone = in.Phone
		u.Address = in.Address
		u.City = in.City
		u.Country = in.Country
		u.Zip = in.Zip
		if in.Role != "" && req.Role.CanManageUsers() {
			if !in.Role.Valid() {
				return errJSON(c, http.StatusBadRequest, "invalid role")
			}
			u.Role = in.Role
		}
		if in.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
			if err != nil {
				return errJSON(c, http.StatusInternalServerError, "hash error")
			}
			b.hashes[id] = string(hash)
		}
		b.users[i] = u
		return c.JSON(http.StatusOK, u)
	}
	return errJSON(c, http.StatusNotFound, "User not found")
}

func (b *Backend) deleteUser(c echo.Context) error {
	id := c.Param("id")
	req := requester(c)
	if req.ID != id && !req.Role.CanManageUsers() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, u := range b.users {
		if u.ID == id {
			b.users = append(b.users[:i], b.users[i+1:]...)
			delete(b.hashes, id)
			return c.JSON(http.StatusOK, u)
		}
	}
	return errJSON(c, http.StatusNotFound, "User not found")
}

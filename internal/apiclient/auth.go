package apiclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"
)

var (
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingPassword = errors.New("password is required")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs before any request is made.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return ErrMissingEmail
	}
	if c.Password == "" {
		return ErrMissingPassword
	}
	return nil
}

type RegisterInput struct {
	Credentials
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

type AuthResult struct {
	Token string
	User  *session.User
}

type userWire struct {
	UserID   ID     `json:"user_id"`
	IDAlt    ID     `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (u *userWire) toUser() *session.User {
	if u == nil {
		return nil
	}
	id := u.UserID
	if id == "" {
		id = u.IDAlt
	}
	return &session.User{
		ID:       id.String(),
		Email:    u.Email,
		Username: u.Username,
		FullName: u.FullName,
	}
}

type authWire struct {
	Token string    `json:"token"`
	User  *userWire `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	var data authWire
	if err := c.call(ctx, "auth.login", http.MethodPost, "/auth/login", nil, creds, &data); err != nil {
		return nil, err
	}
	return &AuthResult{Token: data.Token, User: data.User.toUser()}, nil
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var data authWire
	if err := c.call(ctx, "auth.register", http.MethodPost, "/auth/register", nil, input, &data); err != nil {
		return nil, err
	}
	return &AuthResult{Token: data.Token, User: data.User.toUser()}, nil
}

// Verify asks the API whether the current bearer token is still valid and
// returns the user it belongs to.
func (c *Client) Verify(ctx context.Context) (*session.User, error) {
	var data struct {
		User *userWire `json:"user"`
	}
	if err := c.call(ctx, "auth.verify", http.MethodPost, "/auth/verify", nil, nil, &data); err != nil {
		return nil, err
	}
	return data.User.toUser(), nil
}

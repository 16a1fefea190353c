package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"

	log "github.com/sirupsen/logrus"
)

var ErrMissingNewPassword = errors.New("new password is required")

type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (in ChangePasswordInput) Validate() error {
	if in.CurrentPassword == "" {
		return ErrMissingPassword
	}
	if in.NewPassword == "" {
		return ErrMissingNewPassword
	}
	return nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*session.User, error) {
	var data []*userWire
	if err := c.call(ctx, "users.list", http.MethodGet, "/users", nil, nil, &data); err != nil {
		return nil, err
	}
	users := make([]*session.User, 0, len(data))
	for _, u := range data {
		if u == nil {
			continue
		}
		users = append(users, u.toUser())
	}
	return users, nil
}

func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var data userWire
	if err := c.call(ctx, "users.me", http.MethodGet, "/users/me", nil, nil, &data); err != nil {
		return nil, err
	}
	return data.toUser(), nil
}

// MeOrDefault is the soft-fail profile read: on any error the fallback is
// returned and the error only logged.
func (c *Client) MeOrDefault(ctx context.Context, fallback *session.User) *session.User {
	user, err := c.Me(ctx)
	if err != nil {
		log.Warnf("get profile, using stored user: %s", err)
		return fallback
	}
	return user
}

func (c *Client) UpdateMe(ctx context.Context, update ProfileUpdate) (*session.User, error) {
	var data userWire
	if err := c.call(ctx, "users.update_me", http.MethodPut, "/users/me", nil, update, &data); err != nil {
		return nil, err
	}
	return data.toUser(), nil
}

func (c *Client) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return c.call(ctx, "users.change_password", http.MethodPut, "/users/password", nil, input, nil)
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	ErrEmptyToken = errors.New("session token is empty")
	ErrNoSession  = errors.New("no active session")
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// DisplayName prefers the full name, then the username, then the email.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// Claims is the subset of the bearer token payload shown to the user.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email,omitempty"`
	UserID any    `json:"user_id,omitempty"`
}

// Container is the single holder of the authentication state: the bearer
// token and the current user. Changes are written through to the Store.
type Container struct {
	mu    sync.RWMutex
	store Store
	token string
	user  *User
}

func NewContainer(store Store) *Container {
	return &Container{store: store}
}

// Rehydrate loads the persisted session. It is meant to run once at startup.
// A stored user that cannot be decoded is dropped, the token is kept.
func (c *Container) Rehydrate(ctx context.Context) error {
	token, err := c.store.Get(ctx, TokenKey)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("load session token: %w", err)
	}

	var user *User
	rawUser, err := c.store.Get(ctx, UserKey)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return fmt.Errorf("load session user: %w", err)
	default:
		user = &User{}
		if err := json.Unmarshal([]byte(rawUser), user); err != nil {
			log.Warnf("stored session user is corrupted, ignoring it: %s", err)
			user = nil
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.user = user
	return nil
}

func (c *Container) GetToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// User returns a copy of the current user, or nil when nobody is logged in.
func (c *Container) User() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Container) IsAuthenticated() bool {
	return c.GetToken() != ""
}

// SetSession persists and then activates a new session. The user is written
// before the token; when the token write fails the previous user is put back,
// so the store never pairs the old token with the new user.
func (c *Container) SetSession(ctx context.Context, token string, user *User) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	var stored *User
	var userJson []byte
	if user != nil {
		var err error
		if userJson, err = json.Marshal(user); err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
		u := *user
		stored = &u
	}

	prevUser, err := c.store.Get(ctx, UserKey)
	hadUser := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("load session user: %w", err)
	}

	if stored != nil {
		if err := c.store.Set(ctx, UserKey, string(userJson)); err != nil {
			return fmt.Errorf("store session user: %w", err)
		}
	} else if err := c.store.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}

	if err := c.store.Set(ctx, TokenKey, token); err != nil {
		err = fmt.Errorf("store session token: %w", err)
		var restoreErr error
		if hadUser {
			restoreErr = c.store.Set(ctx, UserKey, prevUser)
		} else {
			restoreErr = c.store.Delete(ctx, UserKey)
		}
		if restoreErr != nil {
			log.Errorf("restore session user after failed token write: %s", restoreErr)
			err = multierr.Append(err, fmt.Errorf("restore session user: %w", restoreErr))
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.user = stored
	return nil
}

// SetUser replaces the stored user, keeping the token.
func (c *Container) SetUser(ctx context.Context, user *User) error {
	token := c.GetToken()
	if token == "" {
		return ErrNoSession
	}
	return c.SetSession(ctx, token, user)
}

// ClearSession logs out. The in-memory state is always cleared, storage
// errors are reported combined.
func (c *Container) ClearSession(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()

	return multierr.Combine(
		c.store.Delete(ctx, TokenKey),
		c.store.Delete(ctx, UserKey),
	)
}

// Claims decodes the token payload without verifying its signature: the API
// is the only party that can verify it, this is for display only.
func (c *Container) Claims() (*Claims, error) {
	token := c.GetToken()
	if token == "" {
		return nil, ErrNoSession
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode session token: %w", err)
	}
	return claims, nil
}

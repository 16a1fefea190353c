package session

import (
	"context"
	"errors"
)

// storage keys, shared with the web client's local storage
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

var ErrNotFound = errors.New("session key not found")

// Store is a small string key-value storage the session container persists into.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

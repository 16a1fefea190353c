package middleware

import (
	"net/http"
	"strings"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

type sessionChecker interface {
	IsAuthenticated() bool
}

type AuthMiddlewareHandler struct {
	sessionChecker       sessionChecker
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(sessionChecker sessionChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessionChecker: sessionChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,

			// login-logout:
			"/a/login":    true,
			"/a/register": true,
			"/a/logout":   true,
		},
		allowedPathsPrefixes: []string{
			"/docs",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthCheck rejects requests to protected routes while no session is active.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if !h.sessionChecker.IsAuthenticated() {
				log.Tracef("[no session] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteError(w, http.StatusUnauthorized, "not logged in")
				span.SetStatus(codes.Error, "no-session")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

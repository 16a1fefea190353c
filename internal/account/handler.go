package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/middleware"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/metrics"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=account_test

type accountClient interface {
	Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.AuthResult, error)
	Register(ctx context.Context, input apiclient.RegisterInput) (*apiclient.AuthResult, error)
	MeOrDefault(ctx context.Context, fallback *session.User) *session.User
	ChangePassword(ctx context.Context, input apiclient.ChangePasswordInput) error
}

type Handler struct {
	client         accountClient
	sessions       *session.Container
	versionInfo    string
	metricsManager *metrics.Manager
}

func NewHandler(
	client accountClient,
	sessions *session.Container,
	versionInfo string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		client:         client,
		sessions:       sessions,
		versionInfo:    versionInfo,
		metricsManager: metricsManager,
	}
}

type authResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user,omitempty"`
}

type meResponse struct {
	User   *session.User   `json:"user"`
	Claims *session.Claims `json:"claims,omitempty"`
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", h.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", h.handleVersion).Methods("GET").Name("version")
	mainRouter.HandleFunc("/me", h.handleMe).Methods("GET", "OPTIONS").Name("me")
	mainRouter.HandleFunc("/me/password", h.handleChangePassword).Methods("PUT", "OPTIONS").Name("change-password")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", h.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/register", h.handleRegister).
		Methods("POST", "OPTIONS").Name("register")
	loginSubrouter.
		HandleFunc("/logout", h.handleLogout).
		Methods("GET", "POST", "OPTIONS").Name("logout")

	// rate limit the login endpoints to prevent credential stuffing
	if rateLimiter != nil {
		loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, h.metricsManager))
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (h *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, h.versionInfo)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var creds apiclient.Credentials
	if err := decodeRequest(r, &creds, func(form func(string) string) {
		creds.Email = form("email")
		creds.Password = form("password")
	}); err != nil {
		log.Errorf("login, decode request: %s", err)
		pkg.WriteError(w, http.StatusBadRequest, "invalid login request")
		return
	}
	if err := creds.Validate(); err != nil {
		pkg.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.client.Login(ctx, creds)
	if err != nil {
		span.SetStatus(codes.Error, "login failed")
		writeClientError(w, "login", err)
		return
	}
	if err := h.startSession(ctx, result); err != nil {
		log.Errorf("login, store session: %s", err)
		pkg.WriteError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	log.Tracef("new login success: %s", result.User.DisplayName())
	pkg.WriteData(w, http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var input apiclient.RegisterInput
	if err := decodeRequest(r, &input, func(form func(string) string) {
		input.Email = form("email")
		input.Password = form("password")
		input.Username = form("username")
		input.FullName = form("full_name")
	}); err != nil {
		log.Errorf("register, decode request: %s", err)
		pkg.WriteError(w, http.StatusBadRequest, "invalid register request")
		return
	}
	if err := input.Validate(); err != nil {
		pkg.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.client.Register(ctx, input)
	if err != nil {
		span.SetStatus(codes.Error, "register failed")
		writeClientError(w, "register", err)
		return
	}
	if err := h.startSession(ctx, result); err != nil {
		log.Errorf("register, store session: %s", err)
		pkg.WriteError(w, http.StatusInternalServerError, "failed to store session")
		return
	}

	pkg.WriteData(w, http.StatusCreated, authResponse{Token: result.Token, User: result.User})
}

func (h *Handler) startSession(ctx context.Context, result *apiclient.AuthResult) error {
	if err := h.sessions.SetSession(ctx, result.Token, result.User); err != nil {
		return err
	}
	if h.metricsManager != nil {
		h.metricsManager.CounterSessionChanges.WithLabelValues("login").Inc()
	}
	return nil
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	wasLogged := h.sessions.IsAuthenticated()
	if err := h.sessions.ClearSession(ctx); err != nil {
		// the in-memory session is gone regardless
		log.Errorf("logout, clear stored session: %s", err)
	}
	if wasLogged && h.metricsManager != nil {
		h.metricsManager.CounterSessionChanges.WithLabelValues("logout").Inc()
	}

	pkg.WriteData(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.me")
	defer span.End()

	stored := h.sessions.User()
	user := h.client.MeOrDefault(ctx, stored)
	if user == nil {
		pkg.WriteError(w, http.StatusNotFound, "no user profile available")
		return
	}
	if user != stored {
		if err := h.sessions.SetUser(ctx, user); err != nil && !errors.Is(err, session.ErrNoSession) {
			log.Warnf("me, refresh stored user: %s", err)
		}
	}

	resp := meResponse{User: user}
	if claims, err := h.sessions.Claims(); err == nil {
		resp.Claims = claims
	} else {
		log.Debugf("me, token claims: %s", err)
	}
	pkg.WriteData(w, http.StatusOK, resp)
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "accountHandler.changePassword")
	defer span.End()

	var input apiclient.ChangePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		pkg.WriteError(w, http.StatusBadRequest, "invalid change password request")
		return
	}
	if err := input.Validate(); err != nil {
		pkg.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.client.ChangePassword(ctx, input); err != nil {
		writeClientError(w, "change password", err)
		return
	}
	pkg.WriteData(w, http.StatusOK, map[string]bool{"changed": true})
}

// decodeRequest reads a JSON body, or a form when the content type is not JSON.
func decodeRequest(r *http.Request, dst any, fromForm func(form func(string) string)) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		return json.NewDecoder(r.Body).Decode(dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	fromForm(r.Form.Get)
	return nil
}

func writeClientError(w http.ResponseWriter, operation string, err error) {
	status := apiclient.ResponseStatus(err)
	var reqErr *apiclient.RequestError
	if errors.As(err, &reqErr) {
		log.Debugf("%s: %s", operation, err)
		pkg.WriteError(w, status, reqErr.Message)
		return
	}
	log.Errorf("%s: %s", operation, err)
	pkg.WriteError(w, status, "TrainDiary API is unavailable")
}

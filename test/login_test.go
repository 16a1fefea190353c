package test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		loginReq           loginRequest
		expectedStatusCode int
		expectedMessage    string
	}{
		"good creds": {
			loginReq:           loginRequest{Email: testEmail, Password: testPassword},
			expectedStatusCode: http.StatusOK,
		},
		"bad password": {
			loginReq:           loginRequest{Email: testEmail, Password: "bad-password"},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Invalid email or password",
		},
		"missing email": {
			loginReq:           loginRequest{Password: testPassword},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "email",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp := s.do(ctx, http.MethodPost, "/a/login", tc.loginReq)
			require.Equal(t, tc.expectedStatusCode, resp.StatusCode)

			var data loginData
			envelope := s.readEnvelope(resp, &data)
			if tc.expectedStatusCode != http.StatusOK {
				assert.False(t, envelope.Success)
				assert.Contains(t, strings.ToLower(envelope.Message), strings.ToLower(tc.expectedMessage))
				return
			}
			assert.True(t, envelope.Success)
			assert.Equal(t, testToken, data.Token)
			assert.Equal(t, "7", data.User.ID)
			assert.Equal(t, "Ana Lima", data.User.FullName)
		})
	}
}

func (s *IntegrationTestSuite) TestLoginThenLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.do(ctx, http.MethodGet, "/me", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	s.doLogin(ctx)

	resp = s.do(ctx, http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		User struct {
			Email    string `json:"email"`
			Username string `json:"username"`
		} `json:"user"`
	}
	s.readEnvelope(resp, &me)
	assert.Equal(t, testEmail, me.User.Email)
	assert.Equal(t, "ana", me.User.Username)

	resp = s.do(ctx, http.MethodPost, "/a/logout", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(ctx, http.MethodGet, "/me", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	exists, err := s.redisClient.Exists(ctx, "traindiary-session||"+session.TokenKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func (s *IntegrationTestSuite) TestSessionStoredInRedis() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.doLogin(ctx)

	token, err := s.redisClient.Get(ctx, "traindiary-session||"+session.TokenKey).Result()
	require.NoError(t, err)
	assert.Equal(t, testToken, token)

	rawUser, err := s.redisClient.Get(ctx, "traindiary-session||"+session.UserKey).Result()
	require.NoError(t, err)
	assert.Contains(t, rawUser, testEmail)
}

func (s *IntegrationTestSuite) TestSessionSurvivesRestart() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.doLogin(ctx)
	s.restartServer(ctx)

	resp := s.do(ctx, http.MethodGet, "/today?date=2024-02-29", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) TestLoginRateLimited() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i := 0; i < loginAllowedPerMin; i++ {
		s.doLogin(ctx)
	}

	resp := s.do(ctx, http.MethodPost, "/a/login", loginRequest{Email: testEmail, Password: testPassword})
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	envelope := s.readEnvelope(resp, nil)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "retry after")
}

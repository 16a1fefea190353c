package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"fullName"`
	} `json:"user"`
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// do sends a request to the companion service the way the web app does.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reader)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	return resp
}

// readEnvelope decodes the response envelope and its data into data.
func (s *IntegrationTestSuite) readEnvelope(resp *http.Response, data any) pkg.Envelope {
	defer resp.Body.Close()
	var raw struct {
		pkg.Envelope
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(decodeJSON(resp.Body, &raw))
	if data != nil && len(raw.Data) > 0 {
		s.Require().NoError(json.Unmarshal(raw.Data, data))
	}
	return raw.Envelope
}

func (s *IntegrationTestSuite) doLogin(ctx context.Context) loginData {
	resp := s.do(ctx, http.MethodPost, "/a/login", loginRequest{Email: testEmail, Password: testPassword})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var data loginData
	envelope := s.readEnvelope(resp, &data)
	s.Require().True(envelope.Success)
	return data
}

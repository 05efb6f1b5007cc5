//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (s *IntegrationTestSuite) TestSessions() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := openSession(ctx, s.T(), s.httpClient, uuid.New())

	status, _ := doUserRequest(ctx, s.T(), s.httpClient, token, "GET", "/gymplan/preferences", nil)
	assert.Equal(s.T(), http.StatusOK, status)

	status, body := doUserRequest(ctx, s.T(), s.httpClient, token, "POST", "/a/session/close", nil)
	assert.Equal(s.T(), http.StatusOK, status)
	assert.Equal(s.T(), "closed", string(body))

	// token is no longer valid
	status, _ = doUserRequest(ctx, s.T(), s.httpClient, token, "GET", "/gymplan/preferences", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, status)

	status, _ = doUserRequest(ctx, s.T(), s.httpClient, "made-up-token", "GET", "/gymplan/schedule", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, status)
}

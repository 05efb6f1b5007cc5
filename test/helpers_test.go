//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/2beens/gymplan/internal/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type openSessionResponse struct {
	Token string `json:"token"`
}

func openSession(ctx context.Context, t *testing.T, client *http.Client, userID uuid.UUID) string {
	t.Helper()

	body := fmt.Sprintf(`{"user_id":"%s"}`, userID)
	req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/a/session", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AppSecretHeader, testAppSecret)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var sessionResp openSessionResponse
	require.NoError(t, json.Unmarshal(respBytes, &sessionResp))
	require.NotEmpty(t, sessionResp.Token)

	return sessionResp.Token
}

// doUserRequest sends an authenticated request and returns the status code and body.
func doUserRequest(
	ctx context.Context,
	t *testing.T,
	client *http.Client,
	token, method, path string,
	body io.Reader,
) (int, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AppSecretHeader, testAppSecret)
	req.Header.Set(middleware.SessionTokenHeader, token)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListFollowersPage tests pagination query parameters and decoding.
func TestListFollowersPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/followers", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"login":"alice"},{"login":"bob"}]`)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	logins, err := client.ListFollowersPage(context.Background(), 2, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, logins)
}

// TestListFollowingPage tests the followee endpoint path.
func TestListFollowingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/following", r.URL.Path)
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	logins, err := client.ListFollowingPage(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Empty(t, logins)
}

// TestGetProfile tests profile decoding.
func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice", r.URL.Path)
		fmt.Fprint(w, `{"login":"alice","public_repos":12,"followers":34,"following":5,"html_url":"https://github.com/alice"}`)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	record, err := client.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", record.Login)
	assert.Equal(t, 12, record.PublicRepos)
	assert.Equal(t, 34, record.Followers)
	assert.Equal(t, 5, record.Following)
	assert.Equal(t, "https://github.com/alice", record.HTMLURL)
}

// TestGetProfileNotFound tests non-2xx handling.
func TestGetProfileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	_, err := client.GetProfile(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

// TestRateLimitError tests that exhausted rate limits produce a specific error.
func TestRateLimitError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	_, err := client.ListFollowersPage(context.Background(), 1, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

// TestCanceledContext tests that a canceled context aborts the call.
func TestCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("test-token", server.URL)
	_, err := client.ListFollowersPage(ctx, 1, 100)
	assert.Error(t, err)
}

// TestDefaultBaseURL tests that an empty base URL selects production.
func TestDefaultBaseURL(t *testing.T) {
	client := NewClient("test-token", "")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

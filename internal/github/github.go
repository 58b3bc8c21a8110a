// Package github implements the remote social client over the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.github.com"

// defaultTimeout bounds a single API call. Retry/backoff is deliberately
// not implemented here; the core never retries either.
const defaultTimeout = 30 * time.Second

// Client talks to the GitHub REST API with bearer-token auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

var _ contract.SocialClient = &Client{} // Compile-time check

// NewClient returns a Client for the given token. An empty baseURL selects
// the production endpoint; tests point it at a local httptest server.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// userRef is the subset of the API user object we care about in list responses.
type userRef struct {
	Login string `json:"login"`
}

// ListFollowersPage implements the SocialClient interface.
func (c *Client) ListFollowersPage(ctx context.Context, page, perPage int) ([]string, error) {
	return c.listPage(ctx, "/user/followers", page, perPage)
}

// ListFollowingPage implements the SocialClient interface.
func (c *Client) ListFollowingPage(ctx context.Context, page, perPage int) ([]string, error) {
	return c.listPage(ctx, "/user/following", page, perPage)
}

// GetProfile implements the SocialClient interface.
func (c *Client) GetProfile(ctx context.Context, login string) (schema.ProfileRecord, error) {
	var record schema.ProfileRecord
	body, err := c.get(ctx, "/users/"+url.PathEscape(login), nil)
	if err != nil {
		return record, fmt.Errorf("fetch profile for %s: %w", login, err)
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return record, fmt.Errorf("decode profile for %s: %w", login, err)
	}
	return record, nil
}

// listPage fetches one page of user references and returns their logins.
func (c *Client) listPage(ctx context.Context, path string, page, perPage int) ([]string, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s page %d: %w", path, page, err)
	}

	var refs []userRef
	if err := json.Unmarshal(body, &refs); err != nil {
		return nil, fmt.Errorf("decode %s page %d: %w", path, page, err)
	}

	logins := make([]string, 0, len(refs))
	for _, ref := range refs {
		logins = append(logins, ref.Login)
	}
	return logins, nil
}

// get performs an authenticated GET and returns the response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return nil, fmt.Errorf("rate limited (HTTP %d); limit resets at X-RateLimit-Reset=%s",
				resp.StatusCode, resp.Header.Get("X-RateLimit-Reset"))
		}
		return nil, fmt.Errorf("unexpected HTTP %d from %s", resp.StatusCode, path)
	}

	return body, nil
}

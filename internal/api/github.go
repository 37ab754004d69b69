package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/reporadar/internal/models"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "RepoRadar/1.0"
	apiVersion     = "2022-11-28"

	// requestTimeout is the single client-wide timeout; there is no
	// per-call timeout or retry policy beyond this.
	requestTimeout = 10 * time.Second
)

// Client is a read-only GitHub REST API client. An empty token makes
// unauthenticated calls, which are subject to a much lower rate limit
// (60/hour instead of 5000/hour).
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *log.Logger
}

// NewClient creates a GitHub API client with the default 10 second timeout.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// NewClientWithLogger creates a client that logs requests, responses
// and rate-limit headers to the given logger.
func NewClientWithLogger(token string, logger *log.Logger) *Client {
	c := NewClient(token)
	c.logger = logger
	return c
}

// getJSON issues one GET request and decodes the 2xx response body
// into out. Transport and HTTP errors come back translated into the
// domain taxonomy.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "endpoint", endpoint, "error", err)
		}
		return fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Debug("Rate limit",
			"remaining", resp.Header.Get("X-RateLimit-Remaining"),
			"reset", resp.Header.Get("X-RateLimit-Reset"),
			"status", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := translateStatus(resp)
		if c.logger != nil {
			c.logger.Error("API error", "endpoint", endpoint, "status", resp.StatusCode, "error", err)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// FetchUser fetches the account record for a username.
func (c *Client) FetchUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RepoListOptions parameterizes a single-page repository listing.
// Zero values fall back to the defaults used throughout this tool:
// owner-only, sorted by last update descending, 100 per page, page 1.
type RepoListOptions struct {
	Type      string // all, owner, member
	Sort      string // created, updated, pushed, full_name
	Direction string // asc, desc
	PerPage   int
	Page      int
}

func (o RepoListOptions) values() url.Values {
	q := url.Values{}
	q.Set("type", defaultString(o.Type, "owner"))
	q.Set("sort", defaultString(o.Sort, "updated"))
	q.Set("direction", defaultString(o.Direction, "desc"))
	q.Set("per_page", strconv.Itoa(defaultInt(o.PerPage, 100)))
	q.Set("page", strconv.Itoa(defaultInt(o.Page, 1)))
	return q
}

// FetchRepositories fetches a single page of a user's repositories.
func (c *Client) FetchRepositories(ctx context.Context, username string, opts RepoListOptions) ([]models.Repository, error) {
	var repos []models.Repository
	path := "/users/" + url.PathEscape(username) + "/repos"
	if err := c.getJSON(ctx, path, opts.values(), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// FetchAllRepositories fetches every owner repository for a user,
// most recently updated first, walking pages of 100 until a short (or
// empty) page signals the end. An account with an exact multiple of
// 100 repositories costs one extra empty-page request; that is the
// termination condition, not a bug.
func (c *Client) FetchAllRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	const perPage = 100

	var all []models.Repository
	for page := 1; ; page++ {
		repos, err := c.FetchRepositories(ctx, username, RepoListOptions{
			Type:      "owner",
			Sort:      "updated",
			Direction: "desc",
			PerPage:   perPage,
			Page:      page,
		})
		if err != nil {
			return nil, err
		}

		all = append(all, repos...)

		if len(repos) < perPage {
			return all, nil
		}
	}
}

// FetchLanguages fetches the language-to-bytes map for one repository.
// fullName is the "owner/repo" form from Repository.FullName.
func (c *Client) FetchLanguages(ctx context.Context, fullName string) (models.LanguageStats, error) {
	langs := models.LanguageStats{}
	if err := c.getJSON(ctx, "/repos/"+fullName+"/languages", nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// FetchRecentEvents fetches one page of a user's public events.
// perPage defaults to 30, page to 1.
func (c *Client) FetchRecentEvents(ctx context.Context, username string, page, perPage int) ([]models.Event, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(defaultInt(perPage, 30)))
	q.Set("page", strconv.Itoa(defaultInt(page, 1)))

	var events []models.Event
	path := "/users/" + url.PathEscape(username) + "/events/public"
	if err := c.getJSON(ctx, path, q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SearchOptions parameterizes a user search.
type SearchOptions struct {
	Sort    string // followers, repositories, joined
	Order   string // asc, desc
	PerPage int
	Page    int
}

// SearchUsers searches for user accounts matching the query, sorted
// by follower count descending by default.
func (c *Client) SearchUsers(ctx context.Context, query string, opts SearchOptions) (*models.UserSearchResult, error) {
	q := url.Values{}
	q.Set("q", query+" type:user")
	q.Set("sort", defaultString(opts.Sort, "followers"))
	q.Set("order", defaultString(opts.Order, "desc"))
	q.Set("per_page", strconv.Itoa(defaultInt(opts.PerPage, 30)))
	q.Set("page", strconv.Itoa(defaultInt(opts.Page, 1)))

	var result models.UserSearchResult
	if err := c.getJSON(ctx, "/search/users", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RateLimit reports the current core API quota for this client's
// credentials. The endpoint itself never counts against the quota.
func (c *Client) RateLimit(ctx context.Context) (*models.RateLimit, error) {
	var result struct {
		Rate models.RateLimit `json:"rate"`
	}
	if err := c.getJSON(ctx, "/rate_limit", nil, &result); err != nil {
		return nil, err
	}
	return &result.Rate, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/thesavant42/reporadar/internal/models"
)

// newTestClient points a client at a local test server.
func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("")
	c.baseURL = srv.URL
	return c
}

func TestFetchUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/torvalds" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("Accept header = %q", got)
		}
		fmt.Fprint(w, `{"id":1024025,"login":"torvalds","name":"Linus Torvalds","followers":150000,"public_repos":7}`)
	}))
	defer srv.Close()

	user, err := newTestClient(srv).FetchUser(context.Background(), "torvalds")
	if err != nil {
		t.Fatalf("FetchUser failed: %v", err)
	}
	if user.Login != "torvalds" || user.Followers != 150000 {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestErrorTranslation(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusForbidden, ErrRateLimited},
		{http.StatusInternalServerError, ErrRemoteUnavailable},
		{http.StatusBadGateway, ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv).FetchUser(context.Background(), "ghost")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("status %d: got %v, want %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestErrorTranslationUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, "short and stout")
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchUser(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected an error for status 418")
	}
	for _, sentinel := range []error{ErrNotFound, ErrRateLimited, ErrRemoteUnavailable, ErrNetworkUnreachable} {
		if errors.Is(err, sentinel) {
			t.Errorf("status 418 should not map to %v", sentinel)
		}
	}
}

func TestNetworkUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv).FetchUser(context.Background(), "torvalds")
	if !errors.Is(err, ErrNetworkUnreachable) {
		t.Errorf("got %v, want ErrNetworkUnreachable", err)
	}
}

func TestFetchAllRepositoriesPagination(t *testing.T) {
	// Page 1 returns a full 100 repos, page 2 returns 3: the client
	// must request exactly two pages and concatenate in fetch order.
	var pagesRequested []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pagesRequested = append(pagesRequested, page)

		if got := r.URL.Query().Get("type"); got != "owner" {
			t.Errorf("type = %q, want owner", got)
		}
		if got := r.URL.Query().Get("sort"); got != "updated" {
			t.Errorf("sort = %q, want updated", got)
		}

		count := 100
		if page == 2 {
			count = 3
		}
		repos := make([]models.Repository, count)
		for i := range repos {
			repos[i].ID = int64((page-1)*100 + i)
			repos[i].Name = fmt.Sprintf("repo-%d-%d", page, i)
		}
		json.NewEncoder(w).Encode(repos)
	}))
	defer srv.Close()

	repos, err := newTestClient(srv).FetchAllRepositories(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchAllRepositories failed: %v", err)
	}
	if len(repos) != 103 {
		t.Errorf("got %d repos, want 103", len(repos))
	}
	if len(pagesRequested) != 2 || pagesRequested[0] != 1 || pagesRequested[1] != 2 {
		t.Errorf("pages requested = %v, want [1 2]", pagesRequested)
	}
	if repos[0].ID != 0 || repos[102].ID != 102 {
		t.Errorf("repos not concatenated in fetch order: first=%d last=%d", repos[0].ID, repos[102].ID)
	}
}

func TestFetchAllRepositoriesEmptyAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	repos, err := newTestClient(srv).FetchAllRepositories(context.Background(), "newcomer")
	if err != nil {
		t.Fatalf("FetchAllRepositories failed: %v", err)
	}
	if len(repos) != 0 {
		t.Errorf("got %d repos, want 0", len(repos))
	}
}

func TestFetchLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/torvalds/linux/languages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"C":99999999,"Assembly":123456}`)
	}))
	defer srv.Close()

	langs, err := newTestClient(srv).FetchLanguages(context.Background(), "torvalds/linux")
	if err != nil {
		t.Fatalf("FetchLanguages failed: %v", err)
	}
	if langs["C"] != 99999999 || langs["Assembly"] != 123456 {
		t.Errorf("unexpected languages: %v", langs)
	}
}

func TestFetchRecentEventsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("per_page"); got != "30" {
			t.Errorf("per_page = %q, want 30", got)
		}
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Errorf("page = %q, want 1", got)
		}
		fmt.Fprint(w, `[{"id":"1","type":"PushEvent","repo":{"id":5,"name":"octocat/hello"}}]`)
	}))
	defer srv.Close()

	events, err := newTestClient(srv).FetchRecentEvents(context.Background(), "octocat", 0, 0)
	if err != nil {
		t.Fatalf("FetchRecentEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].Type != "PushEvent" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestSearchUsersQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "linus type:user" {
			t.Errorf("q = %q, want %q", got, "linus type:user")
		}
		if got := r.URL.Query().Get("sort"); got != "followers" {
			t.Errorf("sort = %q, want followers", got)
		}
		fmt.Fprint(w, `{"total_count":1,"items":[{"login":"torvalds"}]}`)
	}))
	defer srv.Close()

	result, err := newTestClient(srv).SearchUsers(context.Background(), "linus", SearchOptions{})
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if result.TotalCount != 1 || result.Items[0].Login != "torvalds" {
		t.Errorf("unexpected result: %+v", result)
	}
}

// TestRateLimitIntegration hits the real API. Run with:
// go test -v -run TestRateLimitIntegration ./internal/api/
func TestRateLimitIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	rl, err := NewClient("").RateLimit(context.Background())
	if err != nil {
		t.Fatalf("RateLimit failed: %v", err)
	}
	if rl.Limit <= 0 {
		t.Errorf("expected a positive limit, got %d", rl.Limit)
	}
}

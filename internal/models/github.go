package models

import "time"

// User represents a GitHub account as returned by /users/{username}
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Type        string    `json:"type"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Location    string    `json:"location"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	TwitterName string    `json:"twitter_username"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// License describes a repository license (can be null in the API response)
type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
	URL    string `json:"url"`
}

// Repository represents one repository from /users/{username}/repos
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Private         bool      `json:"private"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	Fork            bool      `json:"fork"`
	Homepage        string    `json:"homepage"`
	Size            int       `json:"size"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	Language        string    `json:"language"`
	Forks           int       `json:"forks"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Topics          []string  `json:"topics"`
	Archived        bool      `json:"archived"`
	Disabled        bool      `json:"disabled"`
	IsTemplate      bool      `json:"is_template"`
	Visibility      string    `json:"visibility"`
	DefaultBranch   string    `json:"default_branch"`
	License         *License  `json:"license"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

// EventActor is the account that triggered a public event
type EventActor struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// EventRepo is the repository reference attached to a public event
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Event represents one entry from /users/{username}/events/public.
// The payload shape varies per event type, so it is kept raw.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Actor     EventActor             `json:"actor"`
	Repo      EventRepo              `json:"repo"`
	Payload   map[string]interface{} `json:"payload"`
	Public    bool                   `json:"public"`
	CreatedAt time.Time              `json:"created_at"`
}

// LanguageStats maps language name to cumulative byte count.
// An absent language means zero observed bytes, not "unknown".
type LanguageStats map[string]int64

// UserSearchResult is the response from /search/users
type UserSearchResult struct {
	TotalCount        int    `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []User `json:"items"`
}

// RateLimit reports the core API quota from /rate_limit
type RateLimit struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
	Used      int   `json:"used"`
}

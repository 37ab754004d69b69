// Package filter implements the pure in-memory repository filter and
// sort engine. It never mutates its input.
package filter

import (
	"sort"
	"strings"

	"github.com/thesavant42/reporadar/internal/models"
)

// Sort keys.
const (
	SortUpdated  = "updated"
	SortCreated  = "created"
	SortPushed   = "pushed"
	SortFullName = "full_name"
)

// Sort directions.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Type filters. "member" means "is a fork" - the label comes from the
// GitHub repos API type parameter and is kept for compatibility with
// persisted preferences.
const (
	TypeAll    = "all"
	TypeOwner  = "owner"
	TypeMember = "member"
)

// Spec describes one filter/sort request. The zero value is not
// useful; start from DefaultSpec.
type Spec struct {
	SortBy    string `json:"sortBy"`
	Direction string `json:"direction"`
	Type      string `json:"type"`
	Language  string `json:"language,omitempty"`
	Search    string `json:"search,omitempty"`
}

// DefaultSpec returns the filter state used on first load.
func DefaultSpec() Spec {
	return Spec{
		SortBy:    SortUpdated,
		Direction: DirectionDesc,
		Type:      TypeAll,
	}
}

// Apply filters and sorts a repository collection, returning a new
// slice. Sorting is stable, so repositories that
// compare equal keep their input order.
func Apply(repos []models.Repository, spec Spec) []models.Repository {
	filtered := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if matches(repo, spec) {
			filtered = append(filtered, repo)
		}
	}

	sortRepositories(filtered, spec.SortBy, spec.Direction)
	return filtered
}

func matches(repo models.Repository, spec Spec) bool {
	if spec.Search != "" {
		search := strings.ToLower(spec.Search)
		name := strings.ToLower(repo.Name)
		desc := strings.ToLower(repo.Description)
		if !strings.Contains(name, search) && !(repo.Description != "" && strings.Contains(desc, search)) {
			return false
		}
	}

	if spec.Language != "" && spec.Language != "all" {
		if repo.Language != spec.Language {
			return false
		}
	}

	switch spec.Type {
	case TypeOwner:
		if repo.Fork {
			return false
		}
	case TypeMember:
		if !repo.Fork {
			return false
		}
	}

	return true
}

func sortRepositories(repos []models.Repository, sortBy, direction string) {
	less := func(a, b models.Repository) bool {
		switch sortBy {
		case SortCreated:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortPushed:
			return a.PushedAt.Before(b.PushedAt)
		case SortFullName:
			return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
		case SortUpdated:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return false
		}
	}

	sort.SliceStable(repos, func(i, j int) bool {
		if direction == DirectionAsc {
			return less(repos[i], repos[j])
		}
		return less(repos[j], repos[i])
	})
}

// AvailableLanguages returns the distinct primary languages across
// the full unfiltered collection, sorted alphabetically. Used to
// populate filter choices independent of the current filter state.
func AvailableLanguages(repos []models.Repository) []string {
	seen := make(map[string]bool)
	var languages []string
	for _, repo := range repos {
		if repo.Language == "" || seen[repo.Language] {
			continue
		}
		seen[repo.Language] = true
		languages = append(languages, repo.Language)
	}
	sort.Strings(languages)
	return languages
}

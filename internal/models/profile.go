package models

import "time"

// Statistics holds the derived aggregate numbers for one scan.
// EstimatedCommits is a heuristic (repos*10 + stars*2), not a real
// commit count - GitHub's REST API does not expose one.
type Statistics struct {
	TotalStars       int           `json:"totalStars"`
	TotalForks       int           `json:"totalForks"`
	TotalRepos       int           `json:"totalRepos"`
	EstimatedCommits int           `json:"totalCommits"`
	Languages        LanguageStats `json:"languageStats"`
	Level            string        `json:"contributionLevel"`
}

// ContributionDay is one synthetic calendar entry. Counts are drawn at
// random on every scan because real contribution data is not available
// through the public REST API.
type ContributionDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"` // 0..4 intensity bucket
}

// Profile is the unified result of one scan. It is immutable once
// produced and replaced wholesale on the next scan.
type Profile struct {
	User          *User             `json:"user"`
	Repositories  []Repository      `json:"repositories"`
	Stats         Statistics        `json:"stats"`
	RecentEvents  []Event           `json:"recentActivity"`
	Contributions []ContributionDay `json:"contributions"`
	Achievements  []string          `json:"achievements"`
}

// AccountAge returns how long ago the profile's account was created.
func (p *Profile) AccountAge() time.Duration {
	if p.User == nil {
		return 0
	}
	return time.Since(p.User.CreatedAt)
}

package scan

import (
	"strings"
	"time"

	"github.com/thesavant42/reporadar/internal/models"
)

const yearHours = 365 * 24

// Achievements derives the badge list for a profile. Every matching
// rule fires: a six-year-old account earns all three age badges, a
// 1200-star user earns all four star badges. That mirrors the
// behavior users already see; collapsing to highest-tier-only would
// be a visible change.
func Achievements(user *models.User, repos []models.Repository, stats models.Statistics) []string {
	var achievements []string

	years := time.Since(user.CreatedAt).Hours() / yearHours
	if years >= 5 {
		achievements = append(achievements, "Veteran Space Pilot")
	}
	if years >= 3 {
		achievements = append(achievements, "Experienced Navigator")
	}
	if years >= 1 {
		achievements = append(achievements, "Seasoned Explorer")
	}

	if stats.TotalRepos >= 50 {
		achievements = append(achievements, "Repository Collector")
	}
	if stats.TotalRepos >= 20 {
		achievements = append(achievements, "Active Creator")
	}
	if stats.TotalRepos >= 10 {
		achievements = append(achievements, "Repository Builder")
	}

	if stats.TotalStars >= 1000 {
		achievements = append(achievements, "Star Commander")
	}
	if stats.TotalStars >= 500 {
		achievements = append(achievements, "Rising Star")
	}
	if stats.TotalStars >= 100 {
		achievements = append(achievements, "Popular Creator")
	}
	if stats.TotalStars >= 50 {
		achievements = append(achievements, "Community Favorite")
	}

	if len(stats.Languages) >= 10 {
		achievements = append(achievements, "Polyglot Programmer")
	}
	if len(stats.Languages) >= 5 {
		achievements = append(achievements, "Multi-Language Master")
	}

	if user.Followers >= 1000 {
		achievements = append(achievements, "Influential Leader")
	}
	if user.Followers >= 500 {
		achievements = append(achievements, "Community Builder")
	}
	if user.Followers >= 100 {
		achievements = append(achievements, "Network Connector")
	}

	if strings.Contains(strings.ToLower(user.Bio), "open source") {
		achievements = append(achievements, "Open Source Advocate")
	}

	for _, repo := range repos {
		if repo.StargazersCount >= 100 {
			achievements = append(achievements, "Project Maintainer")
			break
		}
	}

	return achievements
}

package scan

import (
	"math/rand"
	"time"

	"github.com/thesavant42/reporadar/internal/models"
)

// GenerateContributions builds the synthetic one-year contribution
// calendar: one entry per day from 365 days ago through today, each
// with a uniform random count in [0,8). The data is decorative - the
// public REST API exposes no real contribution graph - and is
// regenerated on every scan.
func GenerateContributions() []models.ContributionDay {
	today := time.Now()
	start := today.AddDate(0, 0, -365)

	var days []models.ContributionDay
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		count := rand.Intn(8)
		days = append(days, models.ContributionDay{
			Date:  d.Format("2006-01-02"),
			Count: count,
			Level: intensityLevel(count),
		})
	}
	return days
}

// intensityLevel buckets a daily count into the 0..4 heat scale.
func intensityLevel(count int) int {
	switch {
	case count > 6:
		return 4
	case count > 4:
		return 3
	case count > 2:
		return 2
	case count > 0:
		return 1
	default:
		return 0
	}
}

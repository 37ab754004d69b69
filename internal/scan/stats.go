package scan

import "github.com/thesavant42/reporadar/internal/models"

// ComputeStatistics derives the aggregate numbers for a scan. The
// commit figure is repos*10 + stars*2 - a deliberate heuristic,
// since the REST API exposes no total commit count.
func ComputeStatistics(user *models.User, repos []models.Repository, languages models.LanguageStats) models.Statistics {
	var totalStars, totalForks, totalRepos int
	for _, repo := range repos {
		totalStars += repo.StargazersCount
		totalForks += repo.Forks
		if !repo.Fork {
			totalRepos++
		}
	}

	estimated := len(repos)*10 + totalStars*2

	return models.Statistics{
		TotalStars:       totalStars,
		TotalForks:       totalForks,
		TotalRepos:       totalRepos,
		EstimatedCommits: estimated,
		Languages:        languages,
		Level:            TierFor(estimated).Level,
	}
}

package scan

import (
	"context"
	"sync"

	"github.com/thesavant42/reporadar/internal/models"
)

// languageRepoCap bounds how many repositories get a per-repo
// language fetch; beyond this the rate-limit cost outweighs the
// accuracy gain.
const languageRepoCap = 50

// collectLanguages sums per-repository language bytes across a user's
// non-fork, non-empty repositories, capped to the first cap entries
// in input order (most recently updated first). The per-repository
// fetches run concurrently; an individual failure contributes zero
// bytes for that repository and never aborts the batch. If every
// fetch fails, the result degrades to a size-weighted approximation
// from each repository's reported primary language.
func (s *Scanner) collectLanguages(ctx context.Context, repos []models.Repository) models.LanguageStats {
	var eligible []models.Repository
	for _, repo := range repos {
		if repo.Fork || repo.Size == 0 {
			continue
		}
		eligible = append(eligible, repo)
		if len(eligible) == languageRepoCap {
			break
		}
	}

	if len(eligible) == 0 {
		return models.LanguageStats{}
	}

	stats := models.LanguageStats{}
	failures := 0

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, repo := range eligible {
		wg.Add(1)
		go func(repo models.Repository) {
			defer wg.Done()

			langs, err := s.github.FetchLanguages(ctx, repo.FullName)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if s.logger != nil {
					s.logger.Warn("Language fetch failed", "repo", repo.FullName, "error", err)
				}
				failures++
				return
			}
			for lang, bytes := range langs {
				stats[lang] += bytes
			}
		}(repo)
	}
	wg.Wait()

	if failures == len(eligible) {
		if s.logger != nil {
			s.logger.Warn("All language fetches failed, falling back to primary languages")
		}
		return FallbackLanguages(repos)
	}

	return stats
}

// FallbackLanguages approximates language statistics from each
// repository's single reported primary language weighted by its total
// size, for when the per-repository byte counts are unavailable.
func FallbackLanguages(repos []models.Repository) models.LanguageStats {
	stats := models.LanguageStats{}
	for _, repo := range repos {
		if repo.Language == "" || repo.Size == 0 {
			continue
		}
		stats[repo.Language] += int64(repo.Size)
	}
	return stats
}

package scan

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/reporadar/internal/models"
)

// GitHub is the subset of the API client the scanner needs. Declared
// here so tests can substitute a fake backend.
type GitHub interface {
	FetchUser(ctx context.Context, username string) (*models.User, error)
	FetchAllRepositories(ctx context.Context, username string) ([]models.Repository, error)
	FetchLanguages(ctx context.Context, fullName string) (models.LanguageStats, error)
	FetchRecentEvents(ctx context.Context, username string, page, perPage int) ([]models.Event, error)
}

// Scanner aggregates several GitHub API responses into one Profile.
type Scanner struct {
	github GitHub
	logger *log.Logger
}

// NewScanner creates a Scanner. A nil logger disables logging.
func NewScanner(github GitHub, logger *log.Logger) *Scanner {
	return &Scanner{github: github, logger: logger}
}

// BuildProfile runs one complete scan for a username. The user and
// repository fetches are required: their failure aborts the scan and
// propagates the client error unchanged. Per-repository language
// failures degrade instead of aborting. No partial profile is ever
// returned.
func (s *Scanner) BuildProfile(ctx context.Context, username string) (*models.Profile, error) {
	s.logStep("Scanning user profile", username)
	user, err := s.github.FetchUser(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logStep("Scanning repositories", username)
	repos, err := s.github.FetchAllRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logStep("Analyzing languages", username)
	languages := s.collectLanguages(ctx, repos)

	s.logStep("Calculating statistics", username)
	stats := ComputeStatistics(user, repos, languages)

	s.logStep("Fetching recent activity", username)
	events, err := s.github.FetchRecentEvents(ctx, username, 0, 0)
	if err != nil {
		return nil, err
	}

	s.logStep("Generating contribution calendar", username)
	contributions := GenerateContributions()

	achievements := Achievements(user, repos, stats)

	s.logStep("Scan complete", username)
	return &models.Profile{
		User:          user,
		Repositories:  repos,
		Stats:         stats,
		RecentEvents:  events,
		Contributions: contributions,
		Achievements:  achievements,
	}, nil
}

func (s *Scanner) logStep(msg, username string) {
	if s.logger != nil {
		s.logger.Info(msg, "user", username)
	}
}

package store

import (
	"fmt"
	"testing"

	"github.com/thesavant42/reporadar/internal/db"
	"github.com/thesavant42/reporadar/internal/filter"
	"github.com/thesavant42/reporadar/internal/models"
	"github.com/thesavant42/reporadar/internal/scan"
)

// memPersister records every save in memory.
type memPersister struct {
	saves []db.PersistedState
}

func (m *memPersister) SaveState(state db.PersistedState) error {
	m.saves = append(m.saves, state)
	return nil
}

func newTestStore() (*Store, *memPersister) {
	persist := &memPersister{}
	return New(db.DefaultState(), persist, nil), persist
}

func TestRecentScansDedupeAndCap(t *testing.T) {
	s, _ := newTestStore()

	s.BeginScan("torvalds")
	s.BeginScan("octocat")
	s.BeginScan("torvalds") // duplicate moves to the front

	scans := s.RecentScans()
	if len(scans) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(scans), scans)
	}
	if scans[0] != "torvalds" || scans[1] != "octocat" {
		t.Errorf("history = %v, want [torvalds octocat]", scans)
	}

	// Fill to the cap and push one more: the oldest falls off.
	for i := 0; i < 10; i++ {
		s.BeginScan(fmt.Sprintf("user%d", i))
	}
	s.BeginScan("eleventh")

	scans = s.RecentScans()
	if len(scans) != 10 {
		t.Fatalf("got %d entries, want cap of 10", len(scans))
	}
	if scans[0] != "eleventh" {
		t.Errorf("newest entry = %q, want eleventh", scans[0])
	}
	for _, past := range scans {
		if past == "torvalds" {
			t.Error("oldest entry should have been dropped")
		}
	}
}

func TestScanLifecycleFlags(t *testing.T) {
	s, _ := newTestStore()

	s.BeginScan("octocat")
	if !s.Scanning() || s.Error() != "" {
		t.Errorf("after BeginScan: scanning=%v error=%q", s.Scanning(), s.Error())
	}
	if s.LastScanned() != "octocat" {
		t.Errorf("lastScanned = %q", s.LastScanned())
	}

	s.FailScan("user not found on GitHub")
	if s.Scanning() || s.Error() == "" {
		t.Errorf("after FailScan: scanning=%v error=%q", s.Scanning(), s.Error())
	}

	s.BeginScan("torvalds")
	s.FinishScan(&models.Profile{User: &models.User{Login: "torvalds"}})
	if s.Scanning() || s.Error() != "" || s.Profile() == nil {
		t.Error("after FinishScan the profile should be live with clear flags")
	}
}

func TestTotalsMatchStatistics(t *testing.T) {
	repos := []models.Repository{
		{StargazersCount: 10, Forks: 3},
		{StargazersCount: 5, Forks: 1, Fork: true},
		{StargazersCount: 7, Forks: 0},
	}
	stats := scan.ComputeStatistics(&models.User{}, repos, nil)

	s, _ := newTestStore()
	s.FinishScan(&models.Profile{Repositories: repos, Stats: stats})

	if s.TotalStars() != stats.TotalStars {
		t.Errorf("TotalStars() = %d, Stats.TotalStars = %d", s.TotalStars(), stats.TotalStars)
	}
	if s.TotalForks() != stats.TotalForks {
		t.Errorf("TotalForks() = %d, Stats.TotalForks = %d", s.TotalForks(), stats.TotalForks)
	}
}

func TestTierAgreesWithAggregator(t *testing.T) {
	repos := make([]models.Repository, 30) // 30*10 = 300 commits -> voyager
	stats := scan.ComputeStatistics(&models.User{}, repos, nil)

	s, _ := newTestStore()
	s.FinishScan(&models.Profile{Repositories: repos, Stats: stats})

	if s.Tier().Level != stats.Level {
		t.Errorf("store tier %q disagrees with aggregator tier %q", s.Tier().Level, stats.Level)
	}
	if s.Tier().Level != scan.LevelVoyager {
		t.Errorf("tier = %q, want voyager", s.Tier().Level)
	}
}

func TestTopLanguages(t *testing.T) {
	s, _ := newTestStore()
	s.FinishScan(&models.Profile{
		Stats: models.Statistics{
			Languages: models.LanguageStats{
				"Go":     6000,
				"Python": 3000,
				"Shell":  1000,
			},
		},
	})

	top := s.TopLanguages(2)
	if len(top) != 2 {
		t.Fatalf("got %d languages, want 2", len(top))
	}
	if top[0].Name != "Go" || top[1].Name != "Python" {
		t.Errorf("top = %v", top)
	}
	if top[0].Percentage != 60 {
		t.Errorf("Go share = %f, want 60", top[0].Percentage)
	}
}

func TestFilteredRepositoriesDelegates(t *testing.T) {
	s, _ := newTestStore()
	s.FinishScan(&models.Profile{
		Repositories: []models.Repository{
			{Name: "keeper", Language: "Go"},
			{Name: "other", Language: "Rust"},
		},
	})

	spec := filter.DefaultSpec()
	spec.Language = "Go"
	s.SetFilters(spec)

	got := s.FilteredRepositories()
	if len(got) != 1 || got[0].Name != "keeper" {
		t.Errorf("filtered = %v", got)
	}
}

func TestMutationsPersist(t *testing.T) {
	s, persist := newTestStore()

	s.BeginScan("octocat")
	spec := filter.DefaultSpec()
	spec.Search = "radar"
	s.SetFilters(spec)

	if len(persist.saves) != 2 {
		t.Fatalf("got %d saves, want 2", len(persist.saves))
	}

	last := persist.saves[len(persist.saves)-1]
	if last.LastScannedUsername != "octocat" {
		t.Errorf("persisted lastScanned = %q", last.LastScannedUsername)
	}
	if last.RepositoryFilters.Search != "radar" {
		t.Errorf("persisted filters = %+v", last.RepositoryFilters)
	}
	if len(last.RecentScans) != 1 || last.RecentScans[0] != "octocat" {
		t.Errorf("persisted history = %v", last.RecentScans)
	}
}

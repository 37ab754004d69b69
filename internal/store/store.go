// Package store holds the live client state: the latest scanned
// profile, filter preferences, and recent-search history. All access
// is single-threaded from the UI loop, so no locking is done here. A
// scan started while another is in flight is not synchronized against
// it; the last one to complete wins.
package store

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/reporadar/internal/db"
	"github.com/thesavant42/reporadar/internal/filter"
	"github.com/thesavant42/reporadar/internal/models"
	"github.com/thesavant42/reporadar/internal/scan"
)

// maxRecentScans bounds the search history.
const maxRecentScans = 10

// Persister saves the durable slice of the store. *db.DB implements
// it; a nil Persister disables persistence.
type Persister interface {
	SaveState(db.PersistedState) error
}

// Store owns the live Profile, FilterSpec and RecentScans. The
// profile is replaced wholesale on each successful scan, never merged.
type Store struct {
	profile     *models.Profile
	filters     filter.Spec
	recentScans []string
	lastScanned string

	scanning bool
	errMsg   string

	persist Persister
	logger  *log.Logger
}

// New creates a Store seeded from a persisted state record.
func New(state db.PersistedState, persist Persister, logger *log.Logger) *Store {
	return &Store{
		filters:     state.RepositoryFilters,
		recentScans: append([]string(nil), state.RecentScans...),
		lastScanned: state.LastScannedUsername,
		persist:     persist,
		logger:      logger,
	}
}

// BeginScan records that a scan is in flight: sets the loading flag,
// clears any previous error, and pushes the username onto the
// recent-scan history.
func (s *Store) BeginScan(username string) {
	s.scanning = true
	s.errMsg = ""
	s.lastScanned = username
	s.addRecentScan(username)
	s.persistState()
}

// FinishScan installs a completed profile, replacing the previous one.
func (s *Store) FinishScan(profile *models.Profile) {
	s.profile = profile
	s.scanning = false
	s.errMsg = ""
}

// FailScan records a scan failure. The previous profile, if any,
// stays visible.
func (s *Store) FailScan(message string) {
	s.scanning = false
	s.errMsg = message
}

// Profile returns the live profile, or nil before the first scan.
func (s *Store) Profile() *models.Profile { return s.profile }

// Scanning reports whether a scan is in flight.
func (s *Store) Scanning() bool { return s.scanning }

// Error returns the last scan error message, empty when none.
func (s *Store) Error() string { return s.errMsg }

// LastScanned returns the most recently requested username.
func (s *Store) LastScanned() string { return s.lastScanned }

// Filters returns the current filter spec.
func (s *Store) Filters() filter.Spec { return s.filters }

// SetFilters replaces the filter spec and persists it.
func (s *Store) SetFilters(spec filter.Spec) {
	s.filters = spec
	s.persistState()
}

// FilteredRepositories returns the live repository collection run
// through the filter engine with the current spec.
func (s *Store) FilteredRepositories() []models.Repository {
	if s.profile == nil {
		return nil
	}
	return filter.Apply(s.profile.Repositories, s.filters)
}

// AvailableLanguages lists the distinct languages of the full
// unfiltered collection, for populating filter choices.
func (s *Store) AvailableLanguages() []string {
	if s.profile == nil {
		return nil
	}
	return filter.AvailableLanguages(s.profile.Repositories)
}

// TotalStars recomputes the star total from the live repository
// collection. It matches Stats.TotalStars whenever the profile is
// internally consistent.
func (s *Store) TotalStars() int {
	if s.profile == nil {
		return 0
	}
	var total int
	for _, repo := range s.profile.Repositories {
		total += repo.StargazersCount
	}
	return total
}

// TotalForks recomputes the fork total from the live repository collection.
func (s *Store) TotalForks() int {
	if s.profile == nil {
		return 0
	}
	var total int
	for _, repo := range s.profile.Repositories {
		total += repo.Forks
	}
	return total
}

// LanguageShare is one entry of the top-languages view.
type LanguageShare struct {
	Name       string
	Bytes      int64
	Percentage float64
}

// TopLanguages returns the top limit languages by share of total
// bytes. Equal byte counts keep their map iteration order.
func (s *Store) TopLanguages(limit int) []LanguageShare {
	if s.profile == nil {
		return nil
	}

	stats := s.profile.Stats.Languages
	var total int64
	for _, bytes := range stats {
		total += bytes
	}

	shares := make([]LanguageShare, 0, len(stats))
	for name, bytes := range stats {
		share := LanguageShare{Name: name, Bytes: bytes}
		if total > 0 {
			share.Percentage = float64(bytes) / float64(total) * 100
		}
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Bytes > shares[j].Bytes
	})

	if limit > 0 && len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}

// Tier recomputes the contribution tier from the stored commit
// estimate. It agrees with Stats.Level by construction - both go
// through scan.TierFor.
func (s *Store) Tier() scan.Tier {
	if s.profile == nil {
		return scan.TierFor(0)
	}
	return scan.TierFor(s.profile.Stats.EstimatedCommits)
}

// RecentScans returns the search history, most recent first.
func (s *Store) RecentScans() []string {
	return append([]string(nil), s.recentScans...)
}

// ClearRecentScans empties the search history.
func (s *Store) ClearRecentScans() {
	s.recentScans = nil
	s.persistState()
}

// addRecentScan prepends a username, dropping any existing duplicate
// and capping the history at maxRecentScans.
func (s *Store) addRecentScan(username string) {
	history := make([]string, 0, len(s.recentScans)+1)
	history = append(history, username)
	for _, past := range s.recentScans {
		if past != username {
			history = append(history, past)
		}
	}
	if len(history) > maxRecentScans {
		history = history[:maxRecentScans]
	}
	s.recentScans = history
}

// persistState writes the durable slice of the store. Persistence
// failures are logged, never surfaced - preferences are not worth
// failing a scan over.
func (s *Store) persistState() {
	if s.persist == nil {
		return
	}
	state := db.PersistedState{
		RecentScans:         s.RecentScans(),
		RepositoryFilters:   s.filters,
		LastScannedUsername: s.lastScanned,
	}
	if err := s.persist.SaveState(state); err != nil && s.logger != nil {
		s.logger.Warn("Failed to persist preferences", "error", err)
	}
}

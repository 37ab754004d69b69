package scan

// Contribution levels, lowest to highest.
const (
	LevelRookie    = "rookie"
	LevelExplorer  = "explorer"
	LevelVoyager   = "voyager"
	LevelCommander = "commander"
	LevelLegend    = "legend"
)

// Tier describes a contribution level and, for every tier below
// legend, how many commits remain until the next one.
type Tier struct {
	Level       string
	Title       string
	Description string
	NextLevel   string // empty for legend
	NextIn      int    // commits to the next tier, 0 for legend
}

// TierFor resolves the contribution tier for a commit estimate.
// Thresholds are closed intervals: exactly 50 is explorer, exactly
// 1000 is legend.
func TierFor(commits int) Tier {
	switch {
	case commits >= 1000:
		return Tier{
			Level:       LevelLegend,
			Title:       "Cosmic Legend",
			Description: "Master of the digital universe",
		}
	case commits >= 500:
		return Tier{
			Level:       LevelCommander,
			Title:       "Space Commander",
			Description: "Leading expeditions across the codebase",
			NextLevel:   LevelLegend,
			NextIn:      1000 - commits,
		}
	case commits >= 200:
		return Tier{
			Level:       LevelVoyager,
			Title:       "Code Voyager",
			Description: "Exploring distant repositories",
			NextLevel:   LevelCommander,
			NextIn:      500 - commits,
		}
	case commits >= 50:
		return Tier{
			Level:       LevelExplorer,
			Title:       "Digital Explorer",
			Description: "Discovering new coding territories",
			NextLevel:   LevelVoyager,
			NextIn:      200 - commits,
		}
	default:
		return Tier{
			Level:       LevelRookie,
			Title:       "Space Rookie",
			Description: "Beginning the coding journey",
			NextLevel:   LevelExplorer,
			NextIn:      50 - commits,
		}
	}
}

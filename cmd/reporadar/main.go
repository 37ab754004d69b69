package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/thesavant42/reporadar/internal/api"
	"github.com/thesavant42/reporadar/internal/db"
	"github.com/thesavant42/reporadar/internal/models"
	"github.com/thesavant42/reporadar/internal/scan"
	"github.com/thesavant42/reporadar/internal/store"
	"github.com/thesavant42/reporadar/internal/ui"
)

const defaultDBPath = "reporadar.db"

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	userFlag := flag.String("user", "", "GitHub username or profile URL to scan (skips the prompt)")
	tokenFlag := flag.String("token", "", "GitHub personal access token (optional)")
	dbPath := flag.String("db", defaultDBPath, "Path to SQLite database file")
	jsonFlag := flag.Bool("json", false, "Print the scanned profile as JSON and exit (requires -user)")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	// Also accept the username as a positional argument
	if *userFlag == "" && flag.NArg() > 0 {
		*userFlag = flag.Arg(0)
	}

	token := *tokenFlag
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reporadar",
	})
	if *verboseFlag {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	database, err := db.New(*dbPath)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to initialize database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	client := api.NewClientWithLogger(token, logger)
	scanner := scan.NewScanner(client, logger)
	st := store.New(database.LoadState(), database, logger)

	if *jsonFlag {
		if *userFlag == "" {
			ui.PrintError("-json requires -user")
			os.Exit(1)
		}
		if err := runJSON(scanner, st, *userFlag); err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		return
	}

	runInteractive(scanner, st, *userFlag)
}

// runJSON scans one profile and writes it to stdout as JSON.
func runJSON(scanner *scan.Scanner, st *store.Store, input string) error {
	username, ok := api.ParseUserIdentifier(input)
	if !ok {
		return api.ErrInvalidIdentifier
	}

	st.BeginScan(username)
	profile, err := scanner.BuildProfile(context.Background(), username)
	if err != nil {
		st.FailScan(err.Error())
		return err
	}
	st.FinishScan(profile)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

// runInteractive loops prompt -> scan -> browse until the user quits.
func runInteractive(scanner *scan.Scanner, st *store.Store, initialUser string) {
	for {
		username := ""
		if initialUser != "" {
			parsed, ok := api.ParseUserIdentifier(initialUser)
			if !ok {
				ui.PrintError(api.ErrInvalidIdentifier.Error())
				os.Exit(1)
			}
			username = parsed
			initialUser = ""
		} else {
			var err error
			username, err = ui.PromptForUser(st.RecentScans())
			if err != nil {
				// Ctrl+C at the prompt is a normal exit
				return
			}
		}

		profile, err := scanProfile(scanner, st, username)
		if err != nil {
			ui.PrintError(err.Error())
			if !ui.ConfirmRescan() {
				return
			}
			continue
		}

		ui.PrintSuccess(fmt.Sprintf("Scanned @%s: %d repositories", profile.User.Login, len(profile.Repositories)))
		if err := ui.BrowseResults(st); err != nil {
			ui.PrintError(err.Error())
		}

		if !ui.ConfirmRescan() {
			return
		}
	}
}

// scanProfile runs one scan with a spinner and records the outcome.
func scanProfile(scanner *scan.Scanner, st *store.Store, username string) (*models.Profile, error) {
	st.BeginScan(username)

	var profile *models.Profile
	var scanErr error
	err := ui.RunWithSpinner(fmt.Sprintf("Scanning %s...", username), func() {
		profile, scanErr = scanner.BuildProfile(context.Background(), username)
	})
	if err != nil {
		st.FailScan(err.Error())
		return nil, err
	}
	if scanErr != nil {
		st.FailScan(scanErr.Error())
		return nil, scanErr
	}

	st.FinishScan(profile)
	return profile, nil
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thesavant42/reporadar/internal/api"
)

// sanitizeInput removes null bytes and other invisible control
// characters from pasted input.
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// PromptForUser asks for a GitHub username or profile URL and returns
// the normalized username. Recent scans are offered as suggestions.
func PromptForUser(recent []string) (string, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scan a GitHub profile").
				Description("Username or profile URL (e.g. torvalds, github.com/torvalds)").
				Placeholder("username").
				Suggestions(recent).
				Value(&input).
				Validate(func(s string) error {
					if _, ok := api.ParseUserIdentifier(sanitizeInput(s)); !ok {
						return fmt.Errorf("enter a valid GitHub username or profile URL")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	username, ok := api.ParseUserIdentifier(sanitizeInput(input))
	if !ok {
		// Validate already ran, so this only happens if input mutated
		// between validation and submit.
		return "", api.ErrInvalidIdentifier
	}
	return username, nil
}

// ConfirmRescan asks whether to scan another profile.
func ConfirmRescan() bool {
	var again bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Scan another profile?").
				Affirmative("Yes").
				Negative("Quit").
				Value(&again),
		),
	)

	if err := form.Run(); err != nil {
		return false
	}
	return again
}

package ui

// spinner.go provides a blocking spinner for long-running operations.

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// actionDoneMsg signals the action completed
type actionDoneMsg struct{}

// blockingSpinnerModel runs a spinner while an action executes
type blockingSpinnerModel struct {
	spinner spinner.Model
	title   string
	action  func()
	done    bool
}

// RunWithSpinner executes an action while displaying a spinner.
//
// Example:
//
//	var profile *models.Profile
//	var scanErr error
//	err := RunWithSpinner("Scanning octocat...", func() {
//	    profile, scanErr = scanner.BuildProfile(ctx, "octocat")
//	})
func RunWithSpinner(title string, action func()) error {
	m := blockingSpinnerModel{
		spinner: NewAppSpinner(),
		title:   title,
		action:  action,
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("spinner program error: %w", err)
	}
	return nil
}

func (m blockingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runAction(),
	)
}

func (m blockingSpinnerModel) runAction() tea.Cmd {
	return func() tea.Msg {
		m.action()
		return actionDoneMsg{}
	}
}

func (m blockingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// The scan cannot be aborted mid-flight; swallow keys.
		return m, nil
	}
	return m, nil
}

func (m blockingSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("\n %s %s\n", m.spinner.View(), m.title)
}

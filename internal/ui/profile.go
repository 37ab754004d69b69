package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thesavant42/reporadar/internal/models"
	"github.com/thesavant42/reporadar/internal/store"
)

// RenderProfile renders the profile card for the current scan.
func RenderProfile(st *store.Store, layout Layout) string {
	profile := st.Profile()
	if profile == nil || profile.User == nil {
		return LabelStyle.Render("No profile scanned yet.")
	}
	user := profile.User

	var b strings.Builder

	name := user.Name
	if name == "" {
		name = user.Login
	}
	b.WriteString(TitleStyle.Render(name))
	b.WriteString(LabelStyle.Render("  @" + user.Login))
	b.WriteString("\n")

	if user.Bio != "" {
		b.WriteString(ValueStyle.Render(user.Bio))
		b.WriteString("\n")
	}

	var facts []string
	if user.Location != "" {
		facts = append(facts, user.Location)
	}
	if user.Company != "" {
		facts = append(facts, user.Company)
	}
	facts = append(facts, "joined "+FormatDate(user.CreatedAt))
	b.WriteString(LabelStyle.Render(strings.Join(facts, " · ")))
	b.WriteString("\n\n")

	stats := profile.Stats
	b.WriteString(renderStatLine("Stars", FormatCount(stats.TotalStars)))
	b.WriteString(renderStatLine("Forks", FormatCount(stats.TotalForks)))
	b.WriteString(renderStatLine("Repositories", fmt.Sprintf("%d original, %d total", stats.TotalRepos, len(profile.Repositories))))
	b.WriteString(renderStatLine("Followers", FormatCount(user.Followers)))
	b.WriteString(renderStatLine("Following", FormatCount(user.Following)))
	b.WriteString("\n")

	tier := st.Tier()
	tierStyle := lipgloss.NewStyle().Foreground(LevelColor(tier.Level)).Bold(true)
	b.WriteString(tierStyle.Render(tier.Title))
	b.WriteString(LabelStyle.Render(" — " + tier.Description))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("~%s commits (estimated)", FormatCount(stats.EstimatedCommits))))
	if tier.NextLevel != "" {
		b.WriteString(LabelStyle.Render(fmt.Sprintf(", %d to %s", tier.NextIn, tier.NextLevel)))
	}
	b.WriteString("\n\n")

	if langs := st.TopLanguages(5); len(langs) > 0 {
		b.WriteString(TitleStyle.Render("Top Languages"))
		b.WriteString("\n")
		for _, lang := range langs {
			b.WriteString(renderLanguageBar(lang, layout.ContentWidth))
		}
		b.WriteString("\n")
	}

	if len(profile.Achievements) > 0 {
		b.WriteString(TitleStyle.Render("Achievements"))
		b.WriteString("\n")
		for _, a := range profile.Achievements {
			b.WriteString(BadgeStyle.Render("  ★ " + a))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(TitleStyle.Render("Contributions"))
	b.WriteString(LabelStyle.Render("  (synthetic sample, not real activity)"))
	b.WriteString("\n")
	b.WriteString(renderContributionGraph(profile.Contributions))

	return b.String()
}

func renderStatLine(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		LabelStyle.Render(fmt.Sprintf("%-14s", label)),
		ValueStyle.Render(value))
}

func renderLanguageBar(lang store.LanguageShare, width int) string {
	barWidth := width - 34
	if barWidth < 10 {
		barWidth = 10
	}
	filled := int(float64(barWidth) * lang.Percentage / 100)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("  %s %s %s %s\n",
		ValueStyle.Render(fmt.Sprintf("%-16s", lang.Name)),
		lipgloss.NewStyle().Foreground(ColorBlue).Render(bar),
		ValueStyle.Render(fmt.Sprintf("%5.1f%%", lang.Percentage)),
		LabelStyle.Render("("+FormatBytes(lang.Bytes)+")"))
}

// renderContributionGraph draws the one-year calendar as a weekly
// grid, one column per week, colored by intensity level.
func renderContributionGraph(days []models.ContributionDay) string {
	if len(days) == 0 {
		return ""
	}

	// Rows are weekdays, columns are weeks, chronological left to right.
	const rows = 7
	weeks := (len(days) + rows - 1) / rows

	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, weeks)
		for c := range grid[r] {
			grid[r][c] = -1
		}
	}
	for i, day := range days {
		grid[i%rows][i/rows] = day.Level
	}

	cellStyles := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.WriteString("  ")
		for c := 0; c < weeks; c++ {
			level := grid[r][c]
			if level < 0 {
				b.WriteString(" ")
				continue
			}
			b.WriteString(cellStyles[level].Render("■"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

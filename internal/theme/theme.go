// Package theme holds the opaque style tokens consumed by the rendering
// layer. The engine never depends on anything in here.
package theme

import "charm.land/lipgloss/v2"

// Tokens is one resolved style set.
type Tokens struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Overdue   lipgloss.Style
	Completed lipgloss.Style
	Error     lipgloss.Style
	Card      lipgloss.Style
	Column    lipgloss.Style
	// RevealLeft/RevealRight style the swipe affordances that become
	// progressively visible under a dragged row.
	RevealLeft  lipgloss.Style
	RevealRight lipgloss.Style

	PriorityLow      lipgloss.Style
	PriorityMedium   lipgloss.Style
	PriorityHigh     lipgloss.Style
	PriorityCritical lipgloss.Style
}

// Default builds the token set around one accent color.
func Default(accent string) Tokens {
	if accent == "" {
		accent = "62"
	}
	accentColor := lipgloss.Color(accent)
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")

	return Tokens{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(accentColor),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Dim:       lipgloss.NewStyle().Foreground(dim),
		Overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Completed: lipgloss.NewStyle().Foreground(dim).Strikethrough(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1),
		Column: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		RevealLeft:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		RevealRight: lipgloss.NewStyle().Foreground(lipgloss.Color("77")),

		PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("72")),
		PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

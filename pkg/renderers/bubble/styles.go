package bubble

import "github.com/charmbracelet/lipgloss"

// Styles controls how the interactive form is painted.
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Error         lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
	Help          lipgloss.Style
	Status        lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(2),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		FocusedButton: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Bold(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

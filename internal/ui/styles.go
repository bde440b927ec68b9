package ui

import "github.com/charmbracelet/lipgloss"

// StyleManager holds the drill styles
type StyleManager struct {
	Meta     lipgloss.Style
	Progress lipgloss.Style
	Card     lipgloss.Style
	Correct  lipgloss.Style
	Wrong    lipgloss.Style
	Points   lipgloss.Style
	Help     lipgloss.Style

	// Badge colors keyed by difficulty label
	Badges map[string]lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2),
		Correct:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Wrong:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Points:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Badges: map[string]lipgloss.Color{
			"하":  lipgloss.Color("2"),
			"중":  lipgloss.Color("4"),
			"상":  lipgloss.Color("208"),
			"최상": lipgloss.Color("1"),
		},
	}
}

// Badge renders a difficulty label on its color
func (s *StyleManager) Badge(difficulty string) lipgloss.Style {
	color, ok := s.Badges[difficulty]
	if !ok {
		color = lipgloss.Color("8")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(color).Padding(0, 1)
}

// Global style manager instance
var styles = DefaultStyles()

package utils

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourScheme is the subset of the Catppuccin Mocha palette the panel draws with
type ColourScheme struct {
	Red      string
	Green    string
	Yellow   string
	Blue     string
	Mauve    string
	Lavender string
	Text     string
	Subtext0 string
	Overlay1 string
	Surface1 string
	Surface0 string
	Base     string
}

// Colours provides the default Catppuccin color scheme
var Colours = ColourScheme{
	Red:      "#f38ba8",
	Green:    "#a6e3a1",
	Yellow:   "#f9e2af",
	Blue:     "#89b4fa",
	Mauve:    "#cba6f7",
	Lavender: "#b4befe",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Overlay1: "#7f849c",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
}

// Styles groups the lipgloss styles shared by the contact panel
type Styles struct {
	Header      lipgloss.Style
	Row         lipgloss.Style
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Leaving     lipgloss.Style
	Email       lipgloss.Style
	Empty       lipgloss.Style
	DetailPanel lipgloss.Style
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	Status      lipgloss.Style
}

func NewStyles(c ColourScheme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Surface0)).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Surface1)).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Blue)).
			Padding(0, 1),
		Leaving: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Red)).
			Faint(true).
			Padding(0, 1),
		Email: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtext0)),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Overlay1)).
			Padding(1, 1),
		DetailPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Mauve)).
			Padding(0, 1),
		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Lavender)),
		DetailLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Overlay1)).
			Width(8),
		DetailValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Green)).
			Padding(0, 1),
	}
}

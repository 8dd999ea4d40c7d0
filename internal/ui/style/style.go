// Package style provides shared UI styling primitives for consistent
// presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Slate  = lipgloss.Color("#667085")
)

// Styles.
var (
	Installed = lipgloss.NewStyle().Foreground(Green)
	Missing   = lipgloss.NewStyle().Foreground(Red)
	Partial   = lipgloss.NewStyle().Foreground(Yellow)
	Muted     = lipgloss.NewStyle().Foreground(Slate)
	Heading   = lipgloss.NewStyle().Bold(true)
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

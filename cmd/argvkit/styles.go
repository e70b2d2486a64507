// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/argvkit/argvkit/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every styled CLI output. Each color has a light and a
// dark variant; lipgloss picks one from the terminal background unless the
// configured color scheme forces it.
var (
	// ColorPrimary is used for titles and table headers.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	// ColorMuted is used for secondary text and table borders.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	// ColorSuccess is used for rendered tokens and success marks.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	// ColorError is used for failures.
	ColorError = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	// ColorWarning is used for warnings and optional markers.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	// ColorHighlight is used for flag keys and command names.
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CmdStyle      = lipgloss.NewStyle().Foreground(ColorHighlight)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// applyColorScheme pins the adaptive palette to the configured scheme.
// "auto" leaves background detection to lipgloss.
func applyColorScheme(scheme config.ColorScheme) {
	switch scheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	TextMutedStyle lipgloss.Style
	HeaderStyle    lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormFieldErrorStyle   lipgloss.Style
	FormFieldSuccessStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormSuccessStyle      lipgloss.Style
	FormHelpStyle         lipgloss.Style

	ButtonStyle         lipgloss.Style
	ButtonActiveStyle   lipgloss.Style
	ButtonDisabledStyle lipgloss.Style

	SummaryStyle      lipgloss.Style
	SummaryLabelStyle lipgloss.Style
	SummaryValueStyle lipgloss.Style

	FormModalStyle lipgloss.Style
	FooterStyle    lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true).
		MarginBottom(1)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = FormFieldStyle.
		BorderForeground(ColorPrimary)
	FormFieldErrorStyle = FormFieldStyle.
		BorderForeground(ColorError)
	FormFieldSuccessStyle = FormFieldStyle.
		BorderForeground(ColorSuccess)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	ButtonActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted).
		Faint(true)

	SummaryStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(0, 1).
		MarginTop(1)
	SummaryLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	SummaryValueStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)

	FormModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	FooterStyle = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

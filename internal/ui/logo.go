package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type LogoSize string

const (
	LogoSM LogoSize = "sm"
	LogoMD LogoSize = "md"
	LogoLG LogoSize = "lg"
)

var AllLogoSizes = []LogoSize{LogoSM, LogoMD, LogoLG}

const (
	BrandName      = "LIVELINK"
	DefaultLogoAlt = "LIVELINK Logo"
)

type LogoProps struct {
	Size LogoSize
	Alt  string
}

// AltText is the accessible name of the logo, used as the window title.
func (p LogoProps) AltText() string {
	if p.Alt == "" {
		return DefaultLogoAlt
	}
	return p.Alt
}

func Logo(props LogoProps, theme Theme) string {
	mark := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	word := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)

	switch props.Size {
	case LogoSM:
		return mark.Render("◆")
	case LogoLG:
		banner := mark.Render("◆◆") + " " + word.Render(BrandName) + "\n" +
			lipgloss.NewStyle().Foreground(theme.FaintText).Render("   Admin Console")
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(0, 1).
			Render(banner)
	default:
		return mark.Render("◆") + " " + word.Render(BrandName)
	}
}

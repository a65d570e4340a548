package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type BadgeVariant string

const (
	BadgeSuccess BadgeVariant = "success"
	BadgeWarning BadgeVariant = "warning"
	BadgeDanger  BadgeVariant = "danger"
	BadgeInfo    BadgeVariant = "info"
	BadgeNeutral BadgeVariant = "neutral"
)

var AllBadgeVariants = []BadgeVariant{
	BadgeSuccess, BadgeWarning, BadgeDanger, BadgeInfo, BadgeNeutral,
}

func (theme Theme) BadgeColor(variant BadgeVariant) lipgloss.Color {
	switch variant {
	case BadgeSuccess:
		return theme.Success
	case BadgeWarning:
		return theme.Warning
	case BadgeDanger:
		return theme.Danger
	case BadgeInfo:
		return theme.Info
	default:
		return theme.Neutral
	}
}

// Badge renders label as an upper-case pill. Underscores become spaces.
func Badge(label string, variant BadgeVariant, theme Theme) string {
	text := strings.ToUpper(strings.ReplaceAll(label, "_", " "))
	return lipgloss.NewStyle().
		Foreground(theme.BadgeColor(variant)).
		Bold(true).
		Render("● " + text)
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the console palette. All colors are ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Semantic colors shared by Text, Button and Badge.
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Info      lipgloss.Color
	Neutral   lipgloss.Color

	// Foreground used on filled (primary/danger) buttons and badges.
	OnAccent lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	ModalBackground lipgloss.Color
}

// DefaultTheme targets 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	Primary:   lipgloss.Color("33"),  // blue
	Secondary: lipgloss.Color("244"), // gray
	Success:   lipgloss.Color("114"), // green
	Warning:   lipgloss.Color("220"), // amber
	Danger:    lipgloss.Color("196"), // red
	Info:      lipgloss.Color("75"),  // light blue
	Neutral:   lipgloss.Color("245"),

	OnAccent: lipgloss.Color("255"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ModalBackground: lipgloss.Color("235"),
}

// ColorFor maps a TextColor to the palette. The zero value and unknown
// values return NormalText.
func (theme Theme) ColorFor(color TextColor) lipgloss.Color {
	switch color {
	case ColorPrimary:
		return theme.Primary
	case ColorSecondary:
		return theme.Secondary
	case ColorSuccess:
		return theme.Success
	case ColorWarning:
		return theme.Warning
	case ColorDanger:
		return theme.Danger
	case ColorInfo:
		return theme.Info
	default:
		return theme.NormalText
	}
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonDanger    ButtonVariant = "danger"
)

var AllButtonVariants = []ButtonVariant{
	ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGhost, ButtonDanger,
}

type ButtonSize string

const (
	ButtonSM ButtonSize = "sm"
	ButtonMD ButtonSize = "md"
	ButtonLG ButtonSize = "lg"
)

var AllButtonSizes = []ButtonSize{ButtonSM, ButtonMD, ButtonLG}

const spinnerGlyph = "⟳"

type ButtonProps struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Loading  bool
	Focused  bool
	OnClick  func()
}

// IsDisabled is true while disabled or loading.
func (p ButtonProps) IsDisabled() bool {
	return p.Disabled || p.Loading
}

// Click invokes OnClick once when the button is enabled.
func (p ButtonProps) Click() {
	if p.IsDisabled() || p.OnClick == nil {
		return
	}
	p.OnClick()
}

func buttonPadding(size ButtonSize) int {
	switch size {
	case ButtonSM:
		return 1
	case ButtonLG:
		return 3
	default:
		return 2
	}
}

func buttonStyle(variant ButtonVariant, theme Theme) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch variant {
	case ButtonPrimary, "":
		return base.Background(theme.Primary).Foreground(theme.OnAccent).Bold(true)
	case ButtonSecondary:
		return base.Background(theme.Secondary).Foreground(theme.OnAccent)
	case ButtonOutline:
		return base.Foreground(theme.Primary).Underline(true)
	case ButtonGhost:
		return base.Foreground(theme.NormalText)
	case ButtonDanger:
		return base.Background(theme.Danger).Foreground(theme.OnAccent).Bold(true)
	default:
		return base.Foreground(theme.Neutral)
	}
}

// Button renders a single-line button as "[ label ]".
func Button(props ButtonProps, theme Theme) string {
	style := buttonStyle(props.Variant, theme)
	pad := buttonPadding(props.Size)
	style = style.PaddingLeft(pad).PaddingRight(pad)

	label := props.Label
	if props.Loading {
		label = spinnerGlyph + " " + label
	}
	if props.IsDisabled() {
		style = style.Faint(true).UnsetBackground().Foreground(theme.FaintText)
	}
	if props.Focused {
		style = style.Reverse(true)
	}
	return style.Render(label)
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type IconName string

const (
	IconHome         IconName = "home"
	IconUser         IconName = "user"
	IconUsers        IconName = "users"
	IconSettings     IconName = "settings"
	IconClose        IconName = "close"
	IconCheck        IconName = "check"
	IconArrow        IconName = "arrow"
	IconCar          IconName = "car"
	IconTaxi         IconName = "taxi"
	IconDashboard    IconName = "dashboard"
	IconVerification IconName = "verification"
	IconEmergency    IconName = "emergency"
	IconSupport      IconName = "support"
	IconSearch       IconName = "search"
	IconWarning      IconName = "warning"
	IconPhone        IconName = "phone"
	IconDocument     IconName = "document"
	IconMoney        IconName = "money"

	IconSOS           IconName = "sos"
	IconAccident      IconName = "accident"
	IconHarassment    IconName = "harassment"
	IconMedical       IconName = "medical"
	IconBreakdown     IconName = "breakdown"
	IconSafetyConcern IconName = "safety_concern"
	IconPayment       IconName = "payment"
	IconApp           IconName = "app"
	IconOther         IconName = "other"
)

// AllIconNames lists every known icon in declaration order.
var AllIconNames = []IconName{
	IconHome, IconUser, IconUsers, IconSettings, IconClose, IconCheck,
	IconArrow, IconCar, IconTaxi, IconDashboard, IconVerification,
	IconEmergency, IconSupport, IconSearch, IconWarning, IconPhone,
	IconDocument, IconMoney, IconSOS, IconAccident, IconHarassment,
	IconMedical, IconBreakdown, IconSafetyConcern, IconPayment, IconApp, IconOther,
}

type IconSize string

const (
	IconSM IconSize = "sm"
	IconMD IconSize = "md"
	IconLG IconSize = "lg"
)

type IconProps struct {
	Name  IconName
	Size  IconSize
	Color TextColor
}

// Glyph returns the raw glyph for name, or "" when the name is unknown.
func Glyph(name IconName) string {
	switch name {
	case IconHome:
		return "⌂"
	case IconUser:
		return "☺"
	case IconUsers:
		return "☻"
	case IconSettings:
		return "⚙"
	case IconClose:
		return "✕"
	case IconCheck:
		return "✓"
	case IconArrow:
		return "→"
	case IconCar:
		return "▣"
	case IconTaxi:
		return "⊟"
	case IconDashboard:
		return "▦"
	case IconVerification:
		return "☑"
	case IconEmergency:
		return "✚"
	case IconSupport:
		return "✉"
	case IconSearch:
		return "⌕"
	case IconWarning:
		return "⚠"
	case IconPhone:
		return "☎"
	case IconDocument:
		return "▤"
	case IconMoney:
		return "$"
	case IconSOS:
		return "◉"
	case IconAccident:
		return "✖"
	case IconHarassment:
		return "⚑"
	case IconMedical:
		return "✚"
	case IconBreakdown:
		return "⚒"
	case IconSafetyConcern:
		return "⛨"
	case IconPayment:
		return "¤"
	case IconApp:
		return "▢"
	case IconOther:
		return "•"
	}
	return ""
}

// Icon renders the glyph for props.Name. Unknown names render "".
func Icon(props IconProps, theme Theme) string {
	glyph := Glyph(props.Name)
	if glyph == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(theme.ColorFor(props.Color))
	switch props.Size {
	case IconSM:
		style = style.Faint(true)
	case IconLG:
		style = style.Bold(true).PaddingLeft(1).PaddingRight(1)
	}
	return style.Render(glyph)
}

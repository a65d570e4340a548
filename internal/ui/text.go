package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TextElement string

const (
	ElementP    TextElement = "p"
	ElementSpan TextElement = "span"
	ElementDiv  TextElement = "div"
	ElementH1   TextElement = "h1"
	ElementH2   TextElement = "h2"
	ElementH3   TextElement = "h3"
	ElementH4   TextElement = "h4"
	ElementH5   TextElement = "h5"
	ElementH6   TextElement = "h6"
)

var AllTextElements = []TextElement{
	ElementP, ElementSpan, ElementDiv,
	ElementH1, ElementH2, ElementH3, ElementH4, ElementH5, ElementH6,
}

type TextSize string

const (
	SizeXS   TextSize = "xs"
	SizeSM   TextSize = "sm"
	SizeBase TextSize = "base"
	SizeLG   TextSize = "lg"
	SizeXL   TextSize = "xl"
	Size2XL  TextSize = "2xl"
	Size3XL  TextSize = "3xl"
	Size4XL  TextSize = "4xl"
	Size5XL  TextSize = "5xl"
	Size6XL  TextSize = "6xl"
)

var AllTextSizes = []TextSize{
	SizeXS, SizeSM, SizeBase, SizeLG, SizeXL,
	Size2XL, Size3XL, Size4XL, Size5XL, Size6XL,
}

type TextWeight string

const (
	WeightLight    TextWeight = "light"
	WeightNormal   TextWeight = "normal"
	WeightMedium   TextWeight = "medium"
	WeightSemibold TextWeight = "semibold"
	WeightBold     TextWeight = "bold"
)

var AllTextWeights = []TextWeight{
	WeightLight, WeightNormal, WeightMedium, WeightSemibold, WeightBold,
}

type TextColor string

const (
	ColorDefault   TextColor = ""
	ColorPrimary   TextColor = "primary"
	ColorSecondary TextColor = "secondary"
	ColorSuccess   TextColor = "success"
	ColorWarning   TextColor = "warning"
	ColorDanger    TextColor = "danger"
	ColorInfo      TextColor = "info"
)

var AllTextColors = []TextColor{
	ColorPrimary, ColorSecondary, ColorSuccess, ColorWarning, ColorDanger, ColorInfo,
}

type TextProps struct {
	As      TextElement
	Size    TextSize
	Weight  TextWeight
	Color   TextColor
	Content string
}

func (p TextProps) withDefaults() TextProps {
	if p.As == "" {
		p.As = ElementP
	}
	if p.Size == "" {
		p.Size = SizeBase
	}
	if p.Weight == "" {
		p.Weight = WeightNormal
	}
	return p
}

// Block reports whether the element occupies its own line.
func (p TextProps) Block() bool {
	return p.withDefaults().As != ElementSpan
}

func isHeading(el TextElement) bool {
	switch el {
	case ElementH1, ElementH2, ElementH3, ElementH4, ElementH5, ElementH6:
		return true
	default:
		return false
	}
}

// Text renders props.Content. Block elements end with a newline.
func Text(props TextProps, theme Theme) string {
	props = props.withDefaults()
	style := textStyle(props, theme)

	content := props.Content
	if props.As == ElementH1 || props.As == ElementH2 {
		content = strings.ToUpper(content)
	}
	out := style.Render(content)
	if props.Block() {
		out += "\n"
	}
	return out
}

func textStyle(props TextProps, theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(theme.ColorFor(props.Color))

	switch props.Size {
	case SizeXS, SizeSM:
		style = style.Faint(true)
	case SizeLG, SizeXL, Size2XL:
		style = style.Bold(true)
	case Size3XL, Size4XL, Size5XL, Size6XL:
		style = style.Bold(true).PaddingBottom(1)
	}

	switch props.Weight {
	case WeightLight:
		style = style.Faint(true)
	case WeightSemibold, WeightBold:
		style = style.Bold(true)
	}

	if isHeading(props.As) {
		style = style.Bold(true)
	}
	return style
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Host supplies the environment side effects a modal holds while open.
// Each acquisition returns the function that releases it.
type Host interface {
	// BindKeys installs handler ahead of every other key consumer. The
	// handler reports whether it consumed the key.
	BindKeys(handler func(key string) bool) (release func())
	// LockScroll stops the page underneath from scrolling.
	LockScroll() (release func())
}

type ModalProps struct {
	IsOpen               bool
	OnClose              func()
	Title                string
	ShowCloseButton      bool
	CloseOnBackdropClick bool
	Body                 string
	// Width of the content box in columns; 0 picks a width from the screen.
	Width int
}

// DefaultModalProps shows the close button and closes on backdrop click.
func DefaultModalProps() ModalProps {
	return ModalProps{ShowCloseButton: true, CloseOnBackdropClick: true}
}

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Modal is a controlled dialog. The caller owns IsOpen and passes every
// change through Sync; the modal never closes itself, it only asks
// OnClose to.
type Modal struct {
	host  Host
	theme Theme
	props ModalProps

	open     bool
	releases []func()

	content  Rect
	closeBox Rect
}

func NewModal(host Host, theme Theme) *Modal {
	return &Modal{host: host, theme: theme, props: DefaultModalProps()}
}

// Sync applies new props. Entering the open state binds the Escape
// listener and locks scrolling; leaving it releases both.
func (m *Modal) Sync(props ModalProps) {
	m.props = props
	switch {
	case props.IsOpen && !m.open:
		m.open = true
		m.acquire()
	case !props.IsOpen && m.open:
		m.open = false
		m.release()
	}
}

// Unmount releases any held side effects regardless of props.
func (m *Modal) Unmount() {
	m.open = false
	m.release()
}

func (m *Modal) IsOpen() bool {
	return m.open
}

func (m *Modal) Props() ModalProps {
	return m.props
}

func (m *Modal) acquire() {
	if m.host == nil {
		return
	}
	m.releases = append(m.releases,
		m.host.BindKeys(m.handleKey),
		m.host.LockScroll(),
	)
}

func (m *Modal) release() {
	// Release in reverse acquisition order.
	for i := len(m.releases) - 1; i >= 0; i-- {
		if m.releases[i] != nil {
			m.releases[i]()
		}
	}
	m.releases = nil
}

func (m *Modal) handleKey(key string) bool {
	if !m.open {
		return false
	}
	if key == "esc" {
		m.requestClose()
		return true
	}
	return false
}

func (m *Modal) requestClose() {
	if m.props.OnClose != nil {
		m.props.OnClose()
	}
}

// Click routes a mouse click at screen cell (x, y). The close button
// closes; the content box swallows the click; anything else is the
// backdrop and closes only when CloseOnBackdropClick is set. Returns
// false when the modal is closed and the click belongs to the page.
func (m *Modal) Click(x, y int) bool {
	if !m.open {
		return false
	}
	switch {
	case m.props.ShowCloseButton && m.closeBox.Contains(x, y):
		m.requestClose()
	case m.content.Contains(x, y):
	case m.props.CloseOnBackdropClick:
		m.requestClose()
	}
	return true
}

// ContentRect is the content box from the last Render.
func (m *Modal) ContentRect() Rect {
	return m.content
}

// CloseButtonRect is the close button from the last Render.
func (m *Modal) CloseButtonRect() Rect {
	return m.closeBox
}

const (
	modalMinWidth = 30
	modalMargin   = 4
)

// Render lays the modal out centred on a screen of the given size and
// returns the overlay lines with their anchor. A closed modal renders
// nothing.
func (m *Modal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	if !m.open {
		m.content, m.closeBox = Rect{}, Rect{}
		return nil, 0, 0
	}

	width := m.props.Width
	if width <= 0 {
		width = screenWidth * 2 / 3
	}
	if width < modalMinWidth {
		width = modalMinWidth
	}
	if width > screenWidth-modalMargin && screenWidth-modalMargin >= modalMinWidth {
		width = screenWidth - modalMargin
	}
	// Border (2) + padding (2).
	inner := width - 4

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)
	title := titleStyle.Render(ansi.Truncate(m.props.Title, inner-2, "…"))
	closeGlyph := ""
	if m.props.ShowCloseButton {
		closeGlyph = lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(Glyph(IconClose))
	}
	gap := inner - ansi.StringWidth(title) - ansi.StringWidth(closeGlyph)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + closeGlyph

	body := lipgloss.NewStyle().Width(inner).Foreground(m.theme.NormalText).Render(m.props.Body)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Background(m.theme.ModalBackground).
		Padding(0, 1).
		Width(width - 2).
		Render(header + "\n\n" + body)

	lines := strings.Split(box, "\n")
	boxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > boxWidth {
			boxWidth = w
		}
	}
	x := (screenWidth - boxWidth) / 2
	y := (screenHeight - len(lines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	m.content = Rect{X: x, Y: y, Width: boxWidth, Height: len(lines)}
	m.closeBox = Rect{}
	if m.props.ShowCloseButton {
		// Header row sits inside the top border and left padding.
		m.closeBox = Rect{X: x + 2 + inner - ansi.StringWidth(closeGlyph), Y: y + 1, Width: ansi.StringWidth(closeGlyph), Height: 1}
	}
	return lines, x, y
}

// Overlay renders the modal over view. A closed modal leaves view as is.
func (m *Modal) Overlay(view string, screenWidth, screenHeight int) string {
	lines, x, y := m.Render(screenWidth, screenHeight)
	return SpliceOverlay(view, lines, x, y)
}

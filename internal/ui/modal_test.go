package ui

import (
	"testing"
)

// fakeHost records acquisitions and dispatches keys to the newest binding.
type fakeHost struct {
	handlers []func(string) bool
	locks    int
}

func (h *fakeHost) BindKeys(handler func(string) bool) func() {
	h.handlers = append(h.handlers, handler)
	index := len(h.handlers) - 1
	return func() { h.handlers[index] = nil }
}

func (h *fakeHost) LockScroll() func() {
	h.locks++
	return func() { h.locks-- }
}

func (h *fakeHost) bound() int {
	n := 0
	for _, handler := range h.handlers {
		if handler != nil {
			n++
		}
	}
	return n
}

func (h *fakeHost) press(key string) {
	for i := len(h.handlers) - 1; i >= 0; i-- {
		if h.handlers[i] != nil && h.handlers[i](key) {
			return
		}
	}
}

func openModal(host *fakeHost, closes *int, backdrop bool) *Modal {
	modal := NewModal(host, DefaultTheme)
	props := DefaultModalProps()
	props.IsOpen = true
	props.Title = "Reject document"
	props.Body = "Reason required"
	props.CloseOnBackdropClick = backdrop
	props.OnClose = func() { *closes++ }
	modal.Sync(props)
	modal.Render(100, 40)
	return modal
}

func TestModalEscapeClosesOncePerEvent(t *testing.T) {
	host := &fakeHost{}
	closes := 0
	modal := openModal(host, &closes, true)

	// Re-syncing an already open modal must not bind a second listener.
	modal.Sync(modal.Props())

	host.press("esc")
	if closes != 1 {
		t.Fatalf("OnClose called %d times, want 1", closes)
	}
	host.press("x")
	if closes != 1 {
		t.Errorf("non-escape key closed the modal")
	}
}

func TestModalBackdropClick(t *testing.T) {
	tests := []struct {
		name     string
		backdrop bool
		want     int
	}{
		{"enabled", true, 1},
		{"disabled", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{}
			closes := 0
			modal := openModal(host, &closes, tt.backdrop)
			if !modal.Click(0, 0) {
				t.Fatal("open modal did not take the click")
			}
			if closes != tt.want {
				t.Errorf("OnClose called %d times, want %d", closes, tt.want)
			}
		})
	}
}

func TestModalContentClickNeverCloses(t *testing.T) {
	host := &fakeHost{}
	closes := 0
	modal := openModal(host, &closes, true)
	rect := modal.ContentRect()
	if rect.Width == 0 || rect.Height == 0 {
		t.Fatal("content rect not laid out")
	}
	modal.Click(rect.X+1, rect.Y+rect.Height-1)
	if closes != 0 {
		t.Errorf("content click closed the modal")
	}
}

func TestModalCloseButton(t *testing.T) {
	host := &fakeHost{}
	closes := 0
	modal := openModal(host, &closes, false)
	button := modal.CloseButtonRect()
	modal.Click(button.X, button.Y)
	if closes != 1 {
		t.Errorf("close button: OnClose called %d times, want 1", closes)
	}
}

func TestModalReleasesSideEffects(t *testing.T) {
	t.Run("props flip closed", func(t *testing.T) {
		host := &fakeHost{}
		closes := 0
		modal := openModal(host, &closes, true)
		if host.bound() != 1 || host.locks != 1 {
			t.Fatalf("open: bound=%d locks=%d", host.bound(), host.locks)
		}
		props := modal.Props()
		props.IsOpen = false
		modal.Sync(props)
		if host.bound() != 0 || host.locks != 0 {
			t.Errorf("closed: bound=%d locks=%d", host.bound(), host.locks)
		}
		host.press("esc")
		if closes != 0 {
			t.Error("closed modal still reacts to Escape")
		}
	})
	t.Run("unmount while open", func(t *testing.T) {
		host := &fakeHost{}
		closes := 0
		modal := openModal(host, &closes, true)
		modal.Unmount()
		if host.bound() != 0 || host.locks != 0 {
			t.Errorf("unmounted: bound=%d locks=%d", host.bound(), host.locks)
		}
	})
}

func TestClosedModalRendersNothing(t *testing.T) {
	modal := NewModal(&fakeHost{}, DefaultTheme)
	lines, _, _ := modal.Render(80, 24)
	if lines != nil {
		t.Errorf("closed modal rendered %d lines", len(lines))
	}
	if modal.Click(1, 1) {
		t.Error("closed modal consumed a click")
	}
	if got := modal.Overlay("page", 80, 24); got != "page" {
		t.Errorf("Overlay = %q", got)
	}
}

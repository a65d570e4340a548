package console

// keyHost implements ui.Host for the console. Key handlers form a stack:
// the most recently bound handler sees a key first.
type keyHost struct {
	handlers    []*keyHandler
	scrollLocks int
}

type keyHandler struct {
	handle func(string) bool
}

func newKeyHost() *keyHost {
	return &keyHost{}
}

func (h *keyHost) BindKeys(handle func(key string) bool) func() {
	entry := &keyHandler{handle: handle}
	h.handlers = append(h.handlers, entry)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, e := range h.handlers {
			if e == entry {
				h.handlers = append(h.handlers[:i:i], h.handlers[i+1:]...)
				return
			}
		}
	}
}

func (h *keyHost) LockScroll() func() {
	h.scrollLocks++

	released := false
	return func() {
		if released {
			return
		}
		released = true
		h.scrollLocks--
	}
}

// Dispatch offers key to the handlers, newest first, and reports whether
// one consumed it. Handlers may release themselves while running.
func (h *keyHost) Dispatch(key string) bool {
	snapshot := append([]*keyHandler(nil), h.handlers...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i].handle(key) {
			return true
		}
	}
	return false
}

func (h *keyHost) ScrollLocked() bool {
	return h.scrollLocks > 0
}

func (h *keyHost) Listeners() int {
	return len(h.handlers)
}

package console

import "testing"

func TestKeyHostStackOrder(t *testing.T) {
	h := newKeyHost()
	var order []string
	releaseA := h.BindKeys(func(k string) bool {
		order = append(order, "a:"+k)
		return k == "esc"
	})
	releaseB := h.BindKeys(func(k string) bool {
		order = append(order, "b:"+k)
		return false
	})

	if !h.Dispatch("esc") {
		t.Fatal("esc not consumed")
	}
	if len(order) != 2 || order[0] != "b:esc" || order[1] != "a:esc" {
		t.Errorf("order = %v", order)
	}

	releaseB()
	releaseB()
	if h.Listeners() != 1 {
		t.Errorf("listeners = %d after double release", h.Listeners())
	}
	releaseA()
	if h.Dispatch("esc") {
		t.Error("released handler still consumed key")
	}
}

func TestKeyHostSelfRelease(t *testing.T) {
	h := newKeyHost()
	var release func()
	release = h.BindKeys(func(string) bool {
		release()
		return true
	})
	if !h.Dispatch("esc") || h.Listeners() != 0 {
		t.Errorf("self-releasing handler: listeners = %d", h.Listeners())
	}
}

func TestScrollLockCounts(t *testing.T) {
	h := newKeyHost()
	r1 := h.LockScroll()
	r2 := h.LockScroll()
	r1()
	r1()
	if !h.ScrollLocked() {
		t.Error("unlocked while a lock is still held")
	}
	r2()
	if h.ScrollLocked() {
		t.Error("still locked after every release")
	}
}

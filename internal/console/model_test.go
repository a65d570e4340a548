package console

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"livelink/internal/audit"
	"livelink/internal/collection"
	"livelink/internal/entities"
	"livelink/internal/services"
	"livelink/internal/shell"
)

var testNow = time.Date(2024, 9, 11, 16, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (*Model, *audit.Recorder) {
	t.Helper()
	rec := audit.NewRecorder(10)
	svc := services.NewAdminService(services.FixtureSeed(), services.Options{
		Clock:    func() time.Time { return testNow },
		Notifier: rec,
	})
	m := NewModel(svc, Options{Operator: "admin1", Recorder: rec})
	send(m, tea.WindowSizeMsg{Width: 120, Height: 32})
	return m, rec
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Current() != shell.PageDashboard {
		t.Fatalf("start page = %s", m.Current())
	}

	tests := []struct {
		name string
		msg  tea.Msg
		want shell.PageName
	}{
		{"jump to rides", runes("4"), shell.PageRides},
		{"tab forward", tab, shell.PageVerification},
		{"shift+tab back", tea.KeyMsg{Type: tea.KeyShiftTab}, shell.PageRides},
		{"jump to settings", runes("8"), shell.PageSettings},
		{"tab wraps", tab, shell.PageDashboard},
		{"out of range digit ignored", runes("9"), shell.PageDashboard},
	}
	for _, tt := range tests {
		send(m, tt.msg)
		if got := m.Current(); got != tt.want {
			t.Fatalf("%s: page = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestSidebarClickNavigates(t *testing.T) {
	m, _ := newTestModel(t)
	m.View()
	// Third nav item sits on the third body row.
	send(m, tea.MouseMsg{X: 2, Y: headerHeight + 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.Current() != shell.PageUsers {
		t.Errorf("page = %s, want users", m.Current())
	}
}

func TestSearchOpenAndApprove(t *testing.T) {
	m, rec := newTestModel(t)
	send(m, runes("2"), runes("/"), runes("Sarah"), enter)

	if m.searching {
		t.Fatal("still searching after enter")
	}
	if q := m.queries[entities.KindDrivers]; q.Search != "Sarah" {
		t.Fatalf("search = %q", q.Search)
	}
	view := plainView(m)
	if !strings.Contains(view, "drv-2002") || strings.Contains(view, "drv-2001") {
		t.Fatalf("filtered view:\n%s", view)
	}

	send(m, enter)
	if !m.modal.IsOpen() || m.target.ID != "drv-2002" {
		t.Fatalf("details not open for drv-2002: open=%v target=%s", m.modal.IsOpen(), m.target.ID)
	}
	if view := plainView(m); !strings.Contains(view, "driver drv-2002") {
		t.Errorf("modal title missing:\n%s", view)
	}

	send(m, runes("1"))
	if m.modal.IsOpen() {
		t.Error("modal still open after approve")
	}
	e, ok := rec.Last()
	if !ok || e.EntityID != "drv-2002" || e.Action != "approve" || e.Operator != "admin1" {
		t.Fatalf("event = %+v", e)
	}
	if !strings.Contains(m.Status(), "now Active") {
		t.Errorf("status = %q", m.Status())
	}
	if !strings.Contains(plainView(m), "last: approve drivers/drv-2002 by admin1") {
		t.Error("footer does not show last action")
	}
}

func TestUnavailableActionIsRefused(t *testing.T) {
	m, rec := newTestModel(t)
	// drv-2001 is already active; approve is not offered.
	send(m, runes("2"), runes("/"), runes("drv-2001"), enter, enter, runes("1"))
	if !m.modal.IsOpen() {
		t.Fatal("modal closed")
	}
	if m.modalError == "" {
		t.Error("expected an availability error")
	}
	if len(rec.Events()) != 0 {
		t.Errorf("events = %d", len(rec.Events()))
	}
}

func TestEscapeReleasesModalEffects(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, runes("2"), enter)
	if !m.modal.IsOpen() {
		t.Fatal("modal not open")
	}
	if m.host.Listeners() != 1 || !m.host.ScrollLocked() {
		t.Fatalf("listeners=%d locked=%v", m.host.Listeners(), m.host.ScrollLocked())
	}

	send(m, esc)
	if m.modal.IsOpen() {
		t.Fatal("modal still open after esc")
	}
	if m.host.Listeners() != 0 || m.host.ScrollLocked() {
		t.Errorf("listeners=%d locked=%v", m.host.Listeners(), m.host.ScrollLocked())
	}
	if m.Current() != shell.PageDrivers {
		t.Errorf("esc changed page to %s", m.Current())
	}
}

func TestRejectDocumentNeedsReason(t *testing.T) {
	m, rec := newTestModel(t)
	send(m, runes("5"), enter, runes("2"))
	if m.modalKind != modalParam {
		t.Fatalf("modal kind = %d, want param form", m.modalKind)
	}
	target := m.target.ID

	send(m, enter)
	if !m.modal.IsOpen() || m.modalError == "" {
		t.Fatalf("blank reason accepted: open=%v err=%q", m.modal.IsOpen(), m.modalError)
	}
	if len(rec.Events()) != 0 {
		t.Fatal("event recorded for rejected submit")
	}

	// "q" is text here, not quit.
	send(m, runes("q"), tea.KeyMsg{Type: tea.KeyBackspace}, runes("blurry"), enter)
	if m.modal.IsOpen() {
		t.Fatalf("modal open after submit: %q", m.modalError)
	}
	e, ok := rec.Last()
	if !ok || e.EntityID != target || e.Action != "reject" || e.Params[entities.ParamReason] != "blurry" {
		t.Fatalf("event = %+v", e)
	}

	p, _ := m.service.Page(entities.KindDocuments)
	if row, _ := p.Get(target); row.Status != "rejected" {
		t.Errorf("status = %s", row.Status)
	}
	// Default filter shows pending documents only.
	if _, list := m.currentList(); list.Count != 2 {
		t.Errorf("pending list = %d rows", list.Count)
	}
}

func TestEmptyState(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, runes("3"), runes("/"), runes("nobody-here"), enter)
	if view := plainView(m); !strings.Contains(view, "No records match") {
		t.Errorf("empty state missing:\n%s", view)
	}
	// Enter on an empty list opens nothing.
	send(m, enter)
	if m.modal.IsOpen() {
		t.Error("modal opened on empty list")
	}
}

func TestFilterCycling(t *testing.T) {
	m, _ := newTestModel(t)
	status := func() string { return m.queries[entities.KindDrivers].Filters["status"] }

	send(m, runes("2"))
	if got := status(); got != collection.All {
		t.Fatalf("initial status filter = %q", got)
	}
	steps := []string{"active", "inactive", "suspended"}
	for _, want := range steps {
		send(m, runes("o"))
		if got := status(); got != want {
			t.Fatalf("status filter = %q, want %q", got, want)
		}
	}
	send(m, runes("x"))
	if got := status(); got != collection.All {
		t.Errorf("status filter after clear = %q", got)
	}
	if got := m.queries[entities.KindDrivers].Selection("status"); got != "" {
		t.Errorf("Selection after clear = %q, want inactive filter", got)
	}
	send(m, runes("o"))
	if got := status(); got != "active" {
		t.Errorf("status filter after clear and cycle = %q", got)
	}
}

func TestBackdropClick(t *testing.T) {
	m, _ := newTestModel(t)
	click := tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}

	send(m, runes("2"), enter)
	m.View()
	send(m, click)
	if m.modal.IsOpen() {
		t.Error("details modal survived a backdrop click")
	}

	send(m, runes("5"), enter, runes("2"))
	m.View()
	send(m, click)
	if !m.modal.IsOpen() || m.modalKind != modalParam {
		t.Error("parameter form closed on backdrop click")
	}
	if m.Current() != shell.PageVerification {
		t.Errorf("click reached the sidebar: page = %s", m.Current())
	}
}

func TestWheelIgnoredWhileModalOpen(t *testing.T) {
	m, _ := newTestModel(t)
	wheel := tea.MouseMsg{X: 40, Y: 10, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}

	send(m, runes("2"), enter, wheel)
	if c := m.cursors[entities.KindDrivers]; c != 0 {
		t.Fatalf("cursor moved to %d under modal", c)
	}
	send(m, esc, wheel)
	if c := m.cursors[entities.KindDrivers]; c != 1 {
		t.Errorf("cursor = %d after wheel, want 1", c)
	}
}

func TestDashboardAndSettingsViews(t *testing.T) {
	m, _ := newTestModel(t)
	view := plainView(m)
	for _, want := range []string{"LIVELINK", "admin1", "DASHBOARD", "Total Rides", "$18.40", "Quick Actions"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	send(m, runes("8"))
	view = plainView(m)
	for _, want := range []string{"SETTINGS", "Base fare", "Commission", "Expiry warning"} {
		if !strings.Contains(view, want) {
			t.Errorf("settings missing %q", want)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Error("q returned no command")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c returned no command")
	}
}

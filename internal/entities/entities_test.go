package entities

import (
	"strings"
	"testing"
	"time"

	"livelink/internal/collection"
	"livelink/internal/fixtures"
	"livelink/internal/models"
	"livelink/internal/ui"
)

var testNow = time.Date(2024, 9, 12, 9, 0, 0, 0, time.UTC)

func testEnv() Env {
	return Env{Operator: "ops7", Now: testNow}
}

func apply[T any](t *testing.T, cfg Config[T], c collection.Collection[T], id, action string, params Params) (collection.Collection[T], bool) {
	t.Helper()
	a, ok := cfg.Action(action)
	if !ok {
		t.Fatalf("%s has no action %q", cfg.Kind, action)
	}
	return c.Replace(id, func(rec T) (T, bool) { return a.Apply(rec, params, testEnv()) })
}

func TestDriverApprovalScenario(t *testing.T) {
	cfg := Drivers()
	c := collection.New(fixtures.Drivers(), cfg.ID)

	q := cfg.Matcher.DefaultQuery().With("status", string(models.DriverStatusPendingVerification))
	pending := cfg.Matcher.Apply(c, q)
	if len(pending) != 1 || pending[0].ID != "drv-2002" {
		t.Fatalf("pending drivers = %v", pending)
	}
	if got := cfg.Counts(c.Items()).Value("pending"); got != 1 {
		t.Fatalf("pending count = %d, want 1", got)
	}

	next, changed := apply(t, cfg, c, "drv-2002", "approve", nil)
	if !changed {
		t.Fatal("approve reported no change")
	}
	d := next.Get("drv-2002")
	if d.Status != models.DriverStatusActive || d.VerificationStatus != models.VerificationStatusApproved || !d.IsVerified {
		t.Errorf("approved driver = %s/%s/%v", d.Status, d.VerificationStatus, d.IsVerified)
	}
	if !d.UpdatedAt.Equal(testNow) {
		t.Errorf("UpdatedAt = %v", d.UpdatedAt)
	}
	if got := cfg.Counts(next.Items()).Value("pending"); got != 0 {
		t.Errorf("pending count after approve = %d, want 0", got)
	}
	if next.Get("drv-2001") != c.Get("drv-2001") {
		t.Error("untouched driver was copied")
	}
}

func TestRideSearchByPassenger(t *testing.T) {
	cfg := Rides()
	c := collection.New(fixtures.Rides(), cfg.ID)
	got := cfg.Matcher.Apply(c, collection.Query{Search: "1002"})
	if len(got) != 1 || got[0].PassengerID != "usr-1002" {
		t.Fatalf("search 1002 = %v", got)
	}
	for _, r := range cfg.Matcher.Apply(c, collection.Query{Search: "USR-"}) {
		if !strings.Contains(r.PassengerID, "usr-") {
			t.Errorf("ride %s does not match passenger search", r.ID)
		}
	}
}

// Every action applied twice must leave the second collection identical.
func TestActionsAreIdempotent(t *testing.T) {
	params := Params{ParamReason: "blurry", ParamResolution: "refunded", ParamAssignee: "ops7"}

	t.Run("drivers", func(t *testing.T) { checkIdempotent(t, Drivers(), fixtures.Drivers(), params) })
	t.Run("users", func(t *testing.T) { checkIdempotent(t, Users(), fixtures.Users(), params) })
	t.Run("rides", func(t *testing.T) { checkIdempotent(t, Rides(), fixtures.Rides(), params) })
	t.Run("alerts", func(t *testing.T) { checkIdempotent(t, Alerts(), fixtures.Alerts(), params) })
	t.Run("documents", func(t *testing.T) {
		checkIdempotent(t, Documents(func() time.Time { return testNow }, 30*24*time.Hour), fixtures.Documents(fixtures.Drivers()), params)
	})
	t.Run("tickets", func(t *testing.T) {
		cfg := Tickets()
		records := fixtures.Tickets()
		for _, name := range []string{"assign", "resolve"} {
			c := collection.New(records, cfg.ID)
			for _, rec := range records {
				once, _ := apply(t, cfg, c, rec.ID, name, params)
				twice, changed := apply(t, cfg, once, rec.ID, name, params)
				if changed || twice.Get(rec.ID) != once.Get(rec.ID) {
					t.Errorf("%s on %s is not idempotent", name, rec.ID)
				}
			}
		}
	})
}

func checkIdempotent[T any](t *testing.T, cfg Config[T], records []T, params Params) {
	t.Helper()
	c := collection.New(records, cfg.ID)
	for _, action := range cfg.Actions {
		for _, rec := range c.Items() {
			id := cfg.ID(rec)
			once, _ := apply(t, cfg, c, id, action.Name, params)
			twice, changed := apply(t, cfg, once, id, action.Name, params)
			if changed {
				t.Errorf("%s on %s changed the record twice", action.Name, id)
			}
			if twice.Get(id) != once.Get(id) {
				t.Errorf("%s on %s replaced an unchanged record", action.Name, id)
			}
		}
	}
}

func TestTicketEscalationLadder(t *testing.T) {
	cfg := Tickets()
	c := collection.New([]models.SupportTicket{{ID: "tkt-1", Priority: models.TicketPriorityLow}}, cfg.ID)
	want := []models.TicketPriority{models.TicketPriorityMedium, models.TicketPriorityHigh, models.TicketPriorityUrgent}
	for _, p := range want {
		var changed bool
		c, changed = apply(t, cfg, c, "tkt-1", "escalate", nil)
		if !changed || c.Get("tkt-1").Priority != p {
			t.Fatalf("priority = %s, want %s", c.Get("tkt-1").Priority, p)
		}
	}
	if _, changed := apply(t, cfg, c, "tkt-1", "escalate", nil); changed {
		t.Error("urgent ticket escalated further")
	}
}

func TestTicketResolveAppendsAdminResponse(t *testing.T) {
	cfg := Tickets()
	c := collection.New(fixtures.Tickets(), cfg.ID)
	before := c.Get("tkt-4001")
	next, _ := apply(t, cfg, c, "tkt-4001", "resolve", Params{ParamResolution: "duplicate charge refunded"})
	after := next.Get("tkt-4001")
	if after.Status != models.TicketStatusResolved || after.ResolvedAt == nil {
		t.Fatalf("ticket = %+v", after)
	}
	if len(before.Responses) != 0 {
		t.Error("original responses slice grew")
	}
	if len(after.Responses) != 1 {
		t.Fatalf("responses = %d", len(after.Responses))
	}
	r := after.Responses[0]
	if r.Message != "Resolved: duplicate charge refunded" || r.RespondedBy != "ops7" ||
		r.RespondedByType != models.ResponderAdmin || r.IsInternal || r.ID == "" {
		t.Errorf("response = %+v", r)
	}
}

func TestAlertResolveRecordsOperator(t *testing.T) {
	cfg := Alerts()
	c := collection.New(fixtures.Alerts(), cfg.ID)
	next, changed := apply(t, cfg, c, "alr-5002", "resolve", Params{ParamResolution: "tow truck arrived"})
	if !changed {
		t.Fatal("resolve reported no change")
	}
	a := next.Get("alr-5002")
	if a.ResolvedBy != "ops7" || a.ResolvedAt == nil || !a.ResolvedAt.Equal(testNow) {
		t.Errorf("resolved by %q at %v", a.ResolvedBy, a.ResolvedAt)
	}
	if got := a.Actions[len(a.Actions)-1]; got != "Resolved: tow truck arrived" {
		t.Errorf("last action = %q", got)
	}
	if len(c.Get("alr-5002").Actions) != 0 {
		t.Error("original actions slice mutated")
	}

	fwd, _ := apply(t, cfg, c, "alr-5002", "escalate", nil)
	if a := fwd.Get("alr-5002"); a.Status != models.EmergencyStatusForwarded || a.Actions[0] != forwardedAction {
		t.Errorf("escalated alert = %s %v", a.Status, a.Actions)
	}
}

func TestDocumentReviewAndExpiry(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC) }
	cfg := Documents(clock, 30*24*time.Hour)
	c := collection.New(fixtures.Documents(fixtures.Drivers()), cfg.ID)

	counts := cfg.Counts(c.Items())
	if counts.Value("pending") != 3 || counts.Value("approved") != 3 {
		t.Errorf("counts = %+v", counts.Counters)
	}
	// drv-2002's license expires 2025-08-15, inside the window; drv-2001's runs to 2026.
	if counts.Value("expiring") != 1 {
		t.Errorf("expiring = %d, want 1", counts.Value("expiring"))
	}

	rejected, _ := apply(t, cfg, c, "doc-drv-2002-1", "reject", Params{ParamReason: "expired plate"})
	d := rejected.Get("doc-drv-2002-1")
	if d.Status != models.VerificationStatusRejected || d.RejectionReason != "expired plate" || d.VerifiedBy != "" {
		t.Errorf("rejected doc = %+v", d)
	}
	approved, _ := apply(t, cfg, rejected, "doc-drv-2002-1", "approve", nil)
	d = approved.Get("doc-drv-2002-1")
	if d.Status != models.VerificationStatusApproved || d.RejectionReason != "" || d.VerifiedBy != "ops7" {
		t.Errorf("approved doc = %+v", d)
	}
}

func TestRideRevenueAggregate(t *testing.T) {
	cfg := Rides()
	c := collection.New(fixtures.Rides(), cfg.ID)
	if got := cfg.Counts(c.Items()).Total("revenue"); got != 18.40 {
		t.Errorf("revenue = %v, want 18.40", got)
	}
	cancelled, _ := apply(t, cfg, c, "rid-3002", "cancel", Params{ParamReason: "rider request"})
	r := cancelled.Get("rid-3002")
	if r.Status != models.RideStatusCancelled || r.PaymentStatus != models.PaymentStatusRefunded ||
		r.CancelledAt == nil || r.CancellationReason != "rider request" {
		t.Errorf("cancelled ride = %+v", r)
	}
}

func TestStatusVariants(t *testing.T) {
	tests := []struct {
		name string
		got  ui.BadgeVariant
		want ui.BadgeVariant
	}{
		{"active driver", Drivers().Variant(string(models.DriverStatusActive)), ui.BadgeSuccess},
		{"banned driver", Drivers().Variant(string(models.DriverStatusBanned)), ui.BadgeDanger},
		{"rejected driver", Drivers().Variant(string(models.DriverStatusRejected)), ui.BadgeDanger},
		{"unknown driver status", Drivers().Variant("on_vacation"), ui.BadgeNeutral},
		{"open ticket", Tickets().Variant(string(models.TicketStatusOpen)), ui.BadgeWarning},
		{"active alert", Alerts().Variant(string(models.EmergencyStatusActive)), ui.BadgeDanger},
		{"pending document", documentVariant(string(models.VerificationStatusPending)), ui.BadgeWarning},
		{"disputed ride", Rides().Variant(string(models.RideStatusDisputed)), ui.BadgeDanger},
		{"blocked user", Users().Variant(string(models.UserStatusBlocked)), ui.BadgeDanger},
		{"empty status", Users().Variant(""), ui.BadgeNeutral},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: variant = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestAvailabilityDoesNotGuardApply(t *testing.T) {
	cfg := Drivers()
	c := collection.New(fixtures.Drivers(), cfg.ID)
	row := cfg.Row(c.Get("drv-2001"))
	for _, name := range row.Actions {
		if name == "approve" {
			t.Error("approve offered for an approved driver")
		}
	}
	// Suspend is only offered to active drivers but still applies to pending ones.
	next, changed := apply(t, cfg, c, "drv-2002", "suspend", nil)
	if !changed || next.Get("drv-2002").Status != models.DriverStatusSuspended {
		t.Error("suspend did not apply to a pending driver")
	}
}

func TestDescribe(t *testing.T) {
	d := Tickets().Describe()
	if len(d.Filters) != 3 || d.Filters[0].Default != "open" || d.Filters[1].Default != collection.All {
		t.Errorf("filters = %+v", d.Filters)
	}
	a, ok := d.Action("resolve")
	if !ok || len(a.Params) != 1 || a.Params[0] != ParamResolution {
		t.Errorf("resolve descriptor = %+v", a)
	}
}

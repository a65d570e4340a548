package fixtures

import (
	"testing"

	"livelink/internal/models"
)

func TestFreshSlicesPerCall(t *testing.T) {
	a := Users()
	b := Users()
	a[0].Status = models.UserStatusBlocked
	if b[0].Status == models.UserStatusBlocked {
		t.Error("Users() returned shared backing storage")
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	check := func(id string) {
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}
	for _, u := range Users() {
		check(u.ID)
	}
	for _, d := range Drivers() {
		check(d.ID)
	}
	for _, r := range Rides() {
		check(r.ID)
	}
	for _, tk := range Tickets() {
		check(tk.ID)
	}
	for _, a := range Alerts() {
		check(a.ID)
	}
	for _, doc := range Documents(Drivers()) {
		check(doc.ID)
	}
}

func TestDocumentsFollowDriverVerification(t *testing.T) {
	docs := Documents(Drivers())
	if len(docs) != 6 {
		t.Fatalf("len(docs) = %d, want 6", len(docs))
	}
	for _, doc := range docs {
		switch doc.OwnerID {
		case "drv-2001":
			if doc.Status != models.VerificationStatusApproved || doc.VerifiedBy != "admin1" {
				t.Errorf("%s: status=%s verifiedBy=%q", doc.ID, doc.Status, doc.VerifiedBy)
			}
		case "drv-2002":
			if doc.Status != models.VerificationStatusPending || doc.VerifiedAt != nil {
				t.Errorf("%s: status=%s verifiedAt=%v", doc.ID, doc.Status, doc.VerifiedAt)
			}
		default:
			t.Errorf("unexpected owner %q", doc.OwnerID)
		}
		if (doc.Type == models.DocumentTypeDriversLicense) != (doc.ExpiryDate != nil) {
			t.Errorf("%s: only licenses carry an expiry date", doc.ID)
		}
	}
}

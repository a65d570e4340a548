package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func newBufferLogger(t *testing.T, format string) (*Logger, *bytes.Buffer) {
	t.Helper()
	l, err := NewLogger(&Config{Level: DebugLevel, Format: format, Output: "discard", AppName: "livelink"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestWithFieldDoesNotLeak(t *testing.T) {
	base, buf := newBufferLogger(t, "json")
	_ = base.WithField("entity", "drivers")
	base.Info("plain")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not JSON: %v (%q)", err, buf.String())
	}
	if _, ok := entry["entity"]; ok {
		t.Error("child field leaked into parent logger")
	}
	if entry["app"] != "livelink" || entry["message"] != "plain" {
		t.Errorf("entry = %v", entry)
	}
}

func TestLogAdminAction(t *testing.T) {
	l, buf := newBufferLogger(t, "json")
	l.LogAdminAction("admin1", "drivers", "drv-2002", "approve", map[string]interface{}{"changed": true})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	for key, want := range map[string]interface{}{
		"operator_id": "admin1",
		"entity":      "drivers",
		"entity_id":   "drv-2002",
		"action":      "approve",
		"type":        "admin_action",
		"changed":     true,
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %v", key, entry[key], want)
		}
	}
}

func TestWithContext(t *testing.T) {
	l, buf := newBufferLogger(t, "text")
	ctx := ContextWithOperator(ContextWithRequestID(context.Background(), "req-1"), "ops7")
	l.WithContext(ctx).Warn("careful")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-1") || !strings.Contains(out, "operator_id=ops7") {
		t.Errorf("text entry = %q", out)
	}
	if !strings.Contains(out, "[WARNING]") {
		t.Errorf("level missing: %q", out)
	}
}

func TestAuditLoggerForcesJSON(t *testing.T) {
	cfg := &Config{Format: "text", Output: "discard"}
	audit, err := NewAuditLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "text" {
		t.Error("NewAuditLogger mutated the caller's config")
	}
	var buf bytes.Buffer
	audit.logger.SetOutput(&buf)
	audit.LogAction("admin1", "reject", "documents", "doc-1", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), nil)
	if !json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Errorf("audit entry is not JSON: %q", buf.String())
	}
}

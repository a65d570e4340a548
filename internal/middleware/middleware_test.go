package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"livelink/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOperatorRequired(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode int
		wantOp   string
	}{
		{"header wins", "ops-7", http.StatusOK, "ops-7"},
		{"trimmed header", "  ops-7  ", http.StatusOK, "ops-7"},
		{"default when absent", "", http.StatusOK, "admin1"},
		{"embedded space rejected", "ops 7", http.StatusBadRequest, ""},
		{"overlong rejected", strings.Repeat("a", 65), http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.GET("/", OperatorRequired("X-Operator-ID", "admin1"), func(c *gin.Context) {
				got = Operator(c)
				c.Status(http.StatusOK)
			})
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Operator-ID", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode || got != tt.wantOp {
				t.Errorf("code=%d operator=%q, want %d %q", w.Code, got, tt.wantCode, tt.wantOp)
			}
			if tt.wantCode == http.StatusBadRequest && !strings.Contains(w.Body.String(), "INVALID_OPERATOR") {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		allowed   []string
		origin    string
		method    string
		wantCode  int
		wantAllow string
	}{
		{"wildcard", []string{"*"}, "https://ops.example.com", "GET", http.StatusOK, "*"},
		{"listed origin", []string{"https://ops.example.com"}, "https://ops.example.com", "GET", http.StatusOK, "https://ops.example.com"},
		{"unlisted origin", []string{"https://ops.example.com"}, "https://evil.example.com", "GET", http.StatusOK, ""},
		{"preflight", []string{"*"}, "https://ops.example.com", "OPTIONS", http.StatusNoContent, "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.allowed, "X-Operator-ID"))
			r.Any("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("allow origin = %q, want %q", got, tt.wantAllow)
			}
			if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Operator-ID") {
				t.Error("operator header not allowed")
			}
		})
	}
}

func TestRequestIDAndLogging(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewLogger(&logger.Config{Level: "info", Format: "json", Output: "stdout"})
	if err != nil {
		t.Fatal(err)
	}
	log.SetOutput(&buf)

	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(log), OperatorRequired("X-Operator-ID", "admin1"))
	r.GET("/items/:id", func(c *gin.Context) {
		if c.GetString(RequestIDKey) == "" {
			t.Error("request id not set on context")
		}
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest("GET", "/items/7", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("response request id = %q", got)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line %q: %v", buf.String(), err)
	}
	if entry["endpoint"] != "/items/:id" || entry["request_id"] != "req-42" || entry["operator_id"] != "admin1" {
		t.Errorf("entry = %v", entry)
	}
	if entry["level"] != "warning" {
		t.Errorf("level = %v", entry["level"])
	}

	// Generated IDs when the client sends none.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/items/8", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("no generated request id")
	}
}

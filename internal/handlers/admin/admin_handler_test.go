package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"livelink/internal/audit"
	"livelink/internal/entities"
	"livelink/internal/middleware"
	"livelink/internal/models"
	"livelink/internal/services"
	"livelink/internal/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *utils.APIError `json:"error"`
	Meta    *utils.Meta     `json:"meta"`
}

type fakeAuditLogs struct {
	logs     []*models.AuditLog
	err      error
	resource string
	id       string
	operator string
}

func (f *fakeAuditLogs) Create(_ context.Context, log *models.AuditLog) error {
	f.logs = append(f.logs, log)
	return f.err
}

func (f *fakeAuditLogs) GetResourceHistory(_ context.Context, resource, resourceID string, _ *utils.PaginationParams) ([]*models.AuditLog, int64, error) {
	f.resource, f.id = resource, resourceID
	return f.logs, int64(len(f.logs)), f.err
}

func (f *fakeAuditLogs) GetByOperator(_ context.Context, operator string, _ *utils.PaginationParams) ([]*models.AuditLog, int64, error) {
	f.operator = operator
	return f.logs, int64(len(f.logs)), f.err
}

type testServer struct {
	router   *gin.Engine
	recorder *audit.Recorder
}

func newTestServer(t *testing.T, auditLogs *fakeAuditLogs) *testServer {
	t.Helper()
	rec := audit.NewRecorder(20)
	svc := services.NewAdminService(services.FixtureSeed(), services.Options{
		Clock:    func() time.Time { return time.Date(2024, 9, 11, 16, 0, 0, 0, time.UTC) },
		Notifier: rec,
	})

	h := NewAdminHandler(svc, nil, rec)
	if auditLogs != nil {
		h = NewAdminHandler(svc, auditLogs, rec)
	}

	r := gin.New()
	admin := r.Group("/api/v1/admin", middleware.OperatorRequired("X-Operator-ID", "admin1"))
	admin.GET("/nav", h.GetNav)
	admin.GET("/dashboard", h.GetDashboard)
	admin.GET("/settings", h.GetSettings)
	admin.GET("/pages/:entity", h.ListPage)
	admin.GET("/pages/:entity/counts", h.GetCounts)
	admin.GET("/pages/:entity/:id", h.GetRecord)
	admin.POST("/pages/:entity/:id/actions/:action", h.PerformAction)
	admin.GET("/audit", h.GetRecentAudit)
	admin.GET("/audit/pages/:entity/:id", h.GetResourceHistory)
	admin.GET("/audit/operators/:operator", h.GetOperatorHistory)
	return &testServer{router: r, recorder: rec}
}

func (s *testServer) do(t *testing.T, method, path, body string, headers ...string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func TestListPageFilters(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, "GET", "/api/v1/admin/pages/drivers?status=pending_verification", "")
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	var list struct {
		Rows       []entities.Row      `json:"rows"`
		Count      int                 `json:"count"`
		Total      int                 `json:"total"`
		Counts     entities.Counts     `json:"counts"`
		Descriptor entities.Descriptor `json:"descriptor"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 1 || list.Total != 2 || len(list.Rows) != 1 || list.Rows[0].ID != "drv-2002" {
		t.Fatalf("list = %+v", list)
	}
	if list.Counts.Value("pending") != 1 {
		t.Errorf("pending = %d", list.Counts.Value("pending"))
	}
	if len(list.Descriptor.Actions) != 3 {
		t.Errorf("actions = %+v", list.Descriptor.Actions)
	}
	if env.Meta == nil || env.Meta.Count != 1 || env.Meta.Total != 2 {
		t.Errorf("meta = %+v", env.Meta)
	}
}

func TestListPagePagination(t *testing.T) {
	s := newTestServer(t, nil)
	code, env := s.do(t, "GET", "/api/v1/admin/pages/users?page=2&page_size=1", "")
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	var list struct {
		Rows []entities.Row `json:"rows"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	p := env.Meta.Pagination
	if len(list.Rows) != 1 || p.Total != 3 || p.TotalPages != 3 || !p.HasNext || !p.HasPrevious {
		t.Errorf("rows=%d pagination=%+v", len(list.Rows), p)
	}
}

func TestListPageEmptyResult(t *testing.T) {
	s := newTestServer(t, nil)
	code, env := s.do(t, "GET", "/api/v1/admin/pages/rides?search=nobody", "")
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(string(env.Data), `"rows":[]`) || !strings.Contains(string(env.Data), `"count":0`) {
		t.Errorf("data = %s", env.Data)
	}
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		headers  []string
		wantCode int
		wantErr  string
	}{
		{"unknown entity list", "GET", "/api/v1/admin/pages/vehicles", "", nil, http.StatusNotFound, utils.ErrCodeNotFound},
		{"unknown id", "GET", "/api/v1/admin/pages/drivers/drv-9999", "", nil, http.StatusNotFound, utils.ErrCodeNotFound},
		{"malformed id", "GET", "/api/v1/admin/pages/drivers/BAD", "", nil, http.StatusBadRequest, utils.ErrCodeValidation},
		{"unknown entity action", "POST", "/api/v1/admin/pages/vehicles/veh-1/actions/approve", "", nil, http.StatusNotFound, utils.ErrCodeNotFound},
		{"unknown action", "POST", "/api/v1/admin/pages/drivers/drv-2002/actions/promote", "", nil, http.StatusBadRequest, utils.ErrCodeUnknownAction},
		{"action on unknown id", "POST", "/api/v1/admin/pages/drivers/drv-9999/actions/approve", "", nil, http.StatusNotFound, utils.ErrCodeNotFound},
		{"resolve unknown ticket without resolution", "POST", "/api/v1/admin/pages/tickets/tkt-9999/actions/resolve", "", nil, http.StatusNotFound, utils.ErrCodeNotFound},
		{"missing reason", "POST", "/api/v1/admin/pages/documents/doc-drv-2002-0/actions/reject", `{"reason":"  "}`, nil, http.StatusBadRequest, utils.ErrCodeValidation},
		{"malformed body", "POST", "/api/v1/admin/pages/drivers/drv-2002/actions/approve", `{"reason":`, nil, http.StatusBadRequest, utils.ErrCodeBadRequest},
		{"bad operator", "GET", "/api/v1/admin/nav", "", []string{"X-Operator-ID", "bad op"}, http.StatusBadRequest, utils.ErrCodeInvalidOperator},
		{"audit storage disabled", "GET", "/api/v1/admin/audit/pages/drivers/drv-2001", "", nil, http.StatusServiceUnavailable, utils.ErrCodeUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(t, tt.method, tt.path, tt.body, tt.headers...)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d", code, tt.wantCode)
			}
			if env.Status != utils.StatusError || env.Error == nil || env.Error.Code != tt.wantErr {
				t.Errorf("envelope = %+v error = %+v", env, env.Error)
			}
		})
	}

	if n := len(s.recorder.Events()); n != 0 {
		t.Errorf("failed requests recorded %d events", n)
	}
}

func TestMissingReasonDetails(t *testing.T) {
	s := newTestServer(t, nil)
	_, env := s.do(t, "POST", "/api/v1/admin/pages/documents/doc-drv-2002-0/actions/reject", "")
	if env.Error == nil || env.Error.Details[entities.ParamReason] == "" {
		t.Fatalf("error = %+v", env.Error)
	}
}

func TestPerformActionFlow(t *testing.T) {
	s := newTestServer(t, nil)
	path := "/api/v1/admin/pages/drivers/drv-2002/actions/approve"

	code, env := s.do(t, "POST", path, "", "X-Operator-ID", "ops-7")
	if code != http.StatusOK || env.Message != "Action applied" {
		t.Fatalf("code=%d message=%q", code, env.Message)
	}
	var res services.ActionResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if !res.Applied || res.Row == nil || res.Row.Status != string(models.DriverStatusActive) {
		t.Fatalf("result = %+v", res)
	}

	e, ok := s.recorder.Last()
	if !ok || e.Operator != "ops-7" || e.EntityID != "drv-2002" || e.Action != "approve" {
		t.Fatalf("event = %+v", e)
	}

	code, env = s.do(t, "POST", path, "", "X-Operator-ID", "ops-7")
	if code != http.StatusOK || env.Message != "No change" {
		t.Errorf("repeat: code=%d message=%q", code, env.Message)
	}
	if n := len(s.recorder.Events()); n != 1 {
		t.Errorf("events = %d after idempotent repeat", n)
	}

	code, env = s.do(t, "GET", "/api/v1/admin/audit", "")
	if code != http.StatusOK || env.Meta == nil || env.Meta.Count != 1 {
		t.Errorf("recent audit: code=%d meta=%+v", code, env.Meta)
	}
}

func TestRejectDocumentWithReason(t *testing.T) {
	s := newTestServer(t, nil)
	code, env := s.do(t, "POST", "/api/v1/admin/pages/documents/doc-drv-2002-0/actions/reject", `{"reason":"blurry photo"}`)
	if code != http.StatusOK {
		t.Fatalf("code = %d error = %+v", code, env.Error)
	}
	e, _ := s.recorder.Last()
	if e.Params[entities.ParamReason] != "blurry photo" || e.Operator != "admin1" {
		t.Errorf("event = %+v", e)
	}

	code, env = s.do(t, "GET", "/api/v1/admin/pages/documents/counts", "")
	if code != http.StatusOK {
		t.Fatalf("counts code = %d", code)
	}
	var counts entities.Counts
	if err := json.Unmarshal(env.Data, &counts); err != nil {
		t.Fatal(err)
	}
	if counts.Value("pending") != 2 || counts.Value("rejected") != 1 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestStaticEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	code, env := s.do(t, "GET", "/api/v1/admin/nav", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"page":"verification"`) {
		t.Errorf("nav: code=%d data=%s", code, env.Data)
	}

	code, env = s.do(t, "GET", "/api/v1/admin/dashboard", "")
	var metrics models.DashboardMetrics
	if err := json.Unmarshal(env.Data, &metrics); err != nil || code != http.StatusOK {
		t.Fatalf("dashboard: code=%d err=%v", code, err)
	}
	if metrics.TotalRides != 2 || metrics.PendingVerifications != 3 {
		t.Errorf("metrics = %+v", metrics)
	}

	code, env = s.do(t, "GET", "/api/v1/admin/settings", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"base_fare"`) {
		t.Errorf("settings: code=%d data=%s", code, env.Data)
	}

	code, env = s.do(t, "GET", "/api/v1/admin/pages/drivers/drv-2001", "")
	var row entities.Row
	if err := json.Unmarshal(env.Data, &row); err != nil || code != http.StatusOK || row.ID != "drv-2001" {
		t.Errorf("record: code=%d row=%+v err=%v", code, row, err)
	}
}

func TestAuditHistory(t *testing.T) {
	repo := &fakeAuditLogs{logs: []*models.AuditLog{{ID: "a1", Operator: "admin1", Action: "approve", Resource: "drivers", ResourceID: "drv-2002"}}}
	s := newTestServer(t, repo)

	code, env := s.do(t, "GET", "/api/v1/admin/audit/pages/drivers/drv-2002?page_size=5", "")
	if code != http.StatusOK || repo.resource != "drivers" || repo.id != "drv-2002" {
		t.Fatalf("code=%d repo=%+v", code, repo)
	}
	if env.Meta == nil || env.Meta.Total != 1 || env.Meta.Pagination.PageSize != 5 {
		t.Errorf("meta = %+v", env.Meta)
	}

	code, _ = s.do(t, "GET", "/api/v1/admin/audit/operators/admin1", "")
	if code != http.StatusOK || repo.operator != "admin1" {
		t.Errorf("operator history: code=%d operator=%q", code, repo.operator)
	}

	repo.err = errors.New("connection reset")
	code, env = s.do(t, "GET", "/api/v1/admin/audit/operators/admin1", "")
	if code != http.StatusInternalServerError || env.Error.Code != utils.ErrCodeInternal {
		t.Errorf("failing repo: code=%d error=%+v", code, env.Error)
	}
}

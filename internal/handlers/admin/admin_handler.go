package handlers

import (
	"errors"
	"io"
	"net/http"

	"livelink/internal/audit"
	"livelink/internal/entities"
	"livelink/internal/middleware"
	"livelink/internal/repositories/interfaces"
	"livelink/internal/services"
	"livelink/internal/shell"
	"livelink/internal/utils"
	"livelink/internal/validators"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService services.AdminService
	// auditLogs is nil when the Mongo sink is disabled.
	auditLogs interfaces.AuditLogRepository
	recorder  *audit.Recorder
}

func NewAdminHandler(adminService services.AdminService, auditLogs interfaces.AuditLogRepository, recorder *audit.Recorder) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		auditLogs:    auditLogs,
		recorder:     recorder,
	}
}

type recordURI struct {
	ID string `validate:"required,entity_id"`
}

type actionBody struct {
	Reason     string `json:"reason" validate:"max=500"`
	Resolution string `json:"resolution" validate:"max=1000"`
	Assignee   string `json:"assignee" validate:"max=64"`
}

func (b actionBody) params() entities.Params {
	params := entities.Params{}
	if b.Reason != "" {
		params[entities.ParamReason] = b.Reason
	}
	if b.Resolution != "" {
		params[entities.ParamResolution] = b.Resolution
	}
	if b.Assignee != "" {
		params[entities.ParamAssignee] = b.Assignee
	}
	return params
}

type listResponse struct {
	services.ListResult
	Descriptor entities.Descriptor `json:"descriptor"`
}

// GetNav returns the navigation items in display order
func (h *AdminHandler) GetNav(c *gin.Context) {
	utils.SuccessResponse(c, "Navigation retrieved", shell.NavItems())
}

// GetDashboard returns the derived dashboard metrics
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	utils.SuccessResponse(c, "Dashboard retrieved", h.adminService.Dashboard())
}

// GetSettings returns the read-only platform settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	utils.SuccessResponse(c, "Settings retrieved", h.adminService.Settings())
}

// ListPage filters one entity page. Each filter key of the page is read
// from the query string; absent keys keep the page default.
func (h *AdminHandler) ListPage(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}

	descriptor := page.Descriptor()
	query := page.DefaultQuery()
	query.Search = c.Query("search")
	for _, f := range descriptor.Filters {
		if value, ok := c.GetQuery(f.Key); ok && value != "" {
			query = query.With(f.Key, value)
		}
	}

	list := page.List(query)
	params := utils.GetPaginationParams(c)
	rows, pagination := utils.Paginate(list.Rows, params)
	if rows == nil {
		rows = []entities.Row{}
	}
	list.Rows = rows

	utils.SuccessResponseWithMeta(c, "Records retrieved", listResponse{ListResult: list, Descriptor: descriptor}, &utils.Meta{
		Pagination: pagination,
		Total:      int64(list.Total),
		Count:      list.Count,
	})
}

// GetCounts returns the counter badges of one entity page
func (h *AdminHandler) GetCounts(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, "Counts retrieved", page.Counts())
}

// GetRecord returns one record with its details and available actions
func (h *AdminHandler) GetRecord(c *gin.Context) {
	page, ok := h.page(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	row, found := page.Get(id)
	if !found {
		utils.NotFoundResponse(c, page.Descriptor().Singular+" "+id)
		return
	}
	utils.SuccessResponse(c, "Record retrieved", row)
}

// PerformAction applies a named action to one record. An empty body is
// accepted for actions without parameters.
func (h *AdminHandler) PerformAction(c *gin.Context) {
	kind := entities.Kind(c.Param("entity"))
	id, ok := recordID(c)
	if !ok {
		return
	}

	var body actionBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(body); len(errs) > 0 {
		validationErrorResponse(c, errs)
		return
	}

	res, err := h.adminService.Perform(c.Request.Context(), kind, services.ActionRequest{
		ID:       id,
		Action:   c.Param("action"),
		Params:   body.params(),
		Operator: middleware.Operator(c),
	})
	if err != nil {
		actionErrorResponse(c, err)
		return
	}
	if !res.Found {
		utils.NotFoundResponse(c, string(kind)+" "+id)
		return
	}

	message := "Action applied"
	if !res.Applied {
		message = "No change"
	}
	utils.SuccessResponse(c, message, res)
}

// GetRecentAudit returns the most recent audit events held in memory
func (h *AdminHandler) GetRecentAudit(c *gin.Context) {
	events := []audit.Event{}
	if h.recorder != nil {
		events = h.recorder.Events()
	}
	utils.SuccessResponseWithMeta(c, "Audit events retrieved", events, &utils.Meta{Count: len(events)})
}

// GetResourceHistory returns the persisted audit trail of one record
func (h *AdminHandler) GetResourceHistory(c *gin.Context) {
	if !h.auditLogsAvailable(c) {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	logs, total, err := h.auditLogs.GetResourceHistory(c.Request.Context(), c.Param("entity"), id, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Audit history retrieved", logs, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Total:      total,
		Count:      len(logs),
	})
}

// GetOperatorHistory returns the persisted audit trail of one operator
func (h *AdminHandler) GetOperatorHistory(c *gin.Context) {
	if !h.auditLogsAvailable(c) {
		return
	}
	operator := c.Param("operator")
	if err := validators.ValidateOperator(operator); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeInvalidOperator, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	logs, total, err := h.auditLogs.GetByOperator(c.Request.Context(), operator, params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	utils.SuccessResponseWithMeta(c, "Audit history retrieved", logs, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Total:      total,
		Count:      len(logs),
	})
}

func (h *AdminHandler) auditLogsAvailable(c *gin.Context) bool {
	if h.auditLogs == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, utils.ErrCodeUnavailable, "audit log storage is not enabled")
		return false
	}
	return true
}

func (h *AdminHandler) page(c *gin.Context) (services.Page, bool) {
	page, err := h.adminService.Page(entities.Kind(c.Param("entity")))
	if err != nil {
		utils.NotFoundResponse(c, "entity "+c.Param("entity"))
		return nil, false
	}
	return page, true
}

func recordID(c *gin.Context) (string, bool) {
	uri := recordURI{ID: c.Param("id")}
	if errs := validators.ValidateStruct(uri); len(errs) > 0 {
		validationErrorResponse(c, errs)
		return "", false
	}
	return uri.ID, true
}

func actionErrorResponse(c *gin.Context, err error) {
	var verrs validators.ValidationErrors
	switch {
	case errors.Is(err, services.ErrUnknownEntity):
		utils.NotFoundResponse(c, "entity "+c.Param("entity"))
	case errors.Is(err, services.ErrUnknownAction):
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeUnknownAction, err.Error())
	case errors.Is(err, validators.ErrInvalidOperatorID):
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeInvalidOperator, err.Error())
	case errors.As(err, &verrs):
		validationErrorResponse(c, verrs)
	default:
		utils.InternalServerErrorResponse(c)
	}
}

func validationErrorResponse(c *gin.Context, errs validators.ValidationErrors) {
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		details[e.Field] = e.Message
	}
	utils.ValidationErrorResponse(c, details)
}

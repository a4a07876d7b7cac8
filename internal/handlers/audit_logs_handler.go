package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/auditlog"
	"github.com/BruksfildServices01/physio-clinic/internal/dto"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/httpresp"
	"github.com/BruksfildServices01/physio-clinic/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	repo     auditlog.Repository
	timezone string
	log      *slog.Logger
}

func NewAuditLogsHandler(repo auditlog.Repository, tz string, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo, timezone: tz, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := auditlog.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Date range in clinic time, "to" inclusive
	// --------------------------------------------------

	if from := c.Query("from"); from != "" {
		t, err := timezone.DayStart(h.timezone, from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must use the YYYY-MM-DD format.")
			return
		}
		filter.From = &t
	}

	if to := c.Query("to"); to != "" {
		t, err := timezone.DayEnd(h.timezone, to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must use the YYYY-MM-DD format.")
			return
		}
		filter.To = &t
	}

	logs, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.AuditLogPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}

package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/dto"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/httpresp"
)

type TherapyHandler struct {
	repo catalog.TherapyRepository
	log  *slog.Logger
}

func NewTherapyHandler(repo catalog.TherapyRepository, log *slog.Logger) *TherapyHandler {
	return &TherapyHandler{repo: repo, log: log}
}

// List returns active therapies. Admins may pass ?all=true to include
// deactivated ones.
func (h *TherapyHandler) List(c *gin.Context) {
	therapies, err := h.repo.List(c.Request.Context(), listFilter(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, therapies)
}

// Get returns a therapy whether or not it is active.
func (h *TherapyHandler) Get(c *gin.Context) {
	t, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, notFound(err, "therapy_not_found", "Therapy not found."))
		return
	}
	httpresp.OK(c, t)
}

func (h *TherapyHandler) Create(c *gin.Context) {
	var req dto.CreateTherapyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	t := req.Model()
	if err := h.repo.Create(c.Request.Context(), t); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, t)
}

// Update applies a partial update. Setting isActive to false is how a
// therapy is retired.
func (h *TherapyHandler) Update(c *gin.Context) {
	var req dto.UpdateTherapyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	ctx := c.Request.Context()
	t, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, notFound(err, "therapy_not_found", "Therapy not found."))
		return
	}

	req.Apply(t)
	if err := h.repo.Update(ctx, t); err != nil {
		httperr.Respond(c, h.log, notFound(err, "therapy_not_found", "Therapy not found."))
		return
	}
	httpresp.OK(c, t)
}

package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/contact"
	"github.com/BruksfildServices01/physio-clinic/internal/dto"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/httpresp"
	"github.com/BruksfildServices01/physio-clinic/internal/notify"
)

type ContactHandler struct {
	repo     contact.Repository
	notifier notify.Notifier
	log      *slog.Logger
}

func NewContactHandler(repo contact.Repository, notifier notify.Notifier, log *slog.Logger) *ContactHandler {
	return &ContactHandler{repo: repo, notifier: notifier, log: log}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	msg := req.Model()
	if err := h.repo.Create(c.Request.Context(), msg); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	h.notifier.ContactReceived(*msg)
	httpresp.OK(c, msg)
}

func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, msgs)
}

func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, notFound(err, "contact_not_found", "Contact message not found."))
		return
	}
	httpresp.OK(c, msg)
}

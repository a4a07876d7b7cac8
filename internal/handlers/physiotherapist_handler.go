package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/dto"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/httpresp"
	"github.com/BruksfildServices01/physio-clinic/internal/media"
)

var errUploadsDisabled = httperr.Unavailable("uploads_disabled", "Image uploads are not configured.")

// PortraitStore is satisfied by media.Portraits.
type PortraitStore interface {
	Save(ctx context.Context, physiotherapistID string, r io.Reader) (string, error)
}

type PhysiotherapistHandler struct {
	repo      catalog.PhysiotherapistRepository
	portraits PortraitStore
	log       *slog.Logger
}

// NewPhysiotherapistHandler accepts a nil portraits store; uploads then
// answer 503.
func NewPhysiotherapistHandler(
	repo catalog.PhysiotherapistRepository,
	portraits PortraitStore,
	log *slog.Logger,
) *PhysiotherapistHandler {
	return &PhysiotherapistHandler{repo: repo, portraits: portraits, log: log}
}

func physioNotFound(err error) error {
	return notFound(err, "physiotherapist_not_found", "Physiotherapist not found.")
}

func (h *PhysiotherapistHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), listFilter(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PhysiotherapistHandler) Get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, physioNotFound(err))
		return
	}
	httpresp.OK(c, p)
}

func (h *PhysiotherapistHandler) Create(c *gin.Context) {
	var req dto.CreatePhysiotherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	p := req.Model()
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PhysiotherapistHandler) Update(c *gin.Context) {
	var req dto.UpdatePhysiotherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, physioNotFound(err))
		return
	}

	req.Apply(p)
	if err := h.repo.Update(ctx, p); err != nil {
		httperr.Respond(c, h.log, physioNotFound(err))
		return
	}
	httpresp.OK(c, p)
}

// Delete removes the record permanently.
func (h *PhysiotherapistHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, h.log, physioNotFound(err))
		return
	}
	httpresp.Message(c, "Physiotherapist deleted successfully.")
}

// UploadImage stores a portrait from the multipart field "image" and
// points the record at it.
func (h *PhysiotherapistHandler) UploadImage(c *gin.Context) {
	if h.portraits == nil {
		httperr.Respond(c, h.log, errUploadsDisabled)
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.Get(ctx, c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, physioNotFound(err))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+(1<<20))
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "Send the picture in the \"image\" form field.")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Images must be 5 MB or smaller.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer f.Close()

	url, err := h.portraits.Save(ctx, p.ID, f)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			httperr.BadRequest(c, "unsupported_image", "Use a JPEG, PNG or WebP image.")
			return
		}
		if errors.Is(err, media.ErrImageDimensions) {
			httperr.BadRequest(c, "image_too_large", "Images must be at most 8000 pixels per side.")
			return
		}
		httperr.Respond(c, h.log, err)
		return
	}

	p.Image = &url
	if err := h.repo.Update(ctx, p); err != nil {
		httperr.Respond(c, h.log, physioNotFound(err))
		return
	}
	httpresp.OK(c, p)
}

package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/dto"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/httpresp"
	"github.com/BruksfildServices01/physio-clinic/internal/middleware"
	usecaseBooking "github.com/BruksfildServices01/physio-clinic/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *usecaseBooking.CreateBooking
	update *usecaseBooking.UpdateBooking
	delete *usecaseBooking.DeleteBooking
	list   *usecaseBooking.ListBookings
	get    *usecaseBooking.GetBooking
	log    *slog.Logger
}

func NewBookingHandler(
	create *usecaseBooking.CreateBooking,
	update *usecaseBooking.UpdateBooking,
	del *usecaseBooking.DeleteBooking,
	list *usecaseBooking.ListBookings,
	get *usecaseBooking.GetBooking,
	log *slog.Logger,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		update: update,
		delete: del,
		list:   list,
		get:    get,
		log:    log,
	}
}

// ======================================================
// ROUTES
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}

// Create accepts guests. When the caller is signed in the booking is
// theirs.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), req.Input(middleware.Actor(c)))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindingFailed(c, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), req.Input(middleware.Actor(c), c.Param("id")))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.Message(c, "Booking deleted successfully.")
}

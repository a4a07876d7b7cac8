package memory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type bookingRow = models.Booking

type BookingRepository struct {
	rows *table[bookingRow]
	now  func() time.Time
}

func cloneBooking(b bookingRow) models.Booking {
	b.UserID = cloneString(b.UserID)
	b.PatientEmail = cloneString(b.PatientEmail)
	b.PatientAge = cloneInt(b.PatientAge)
	b.AppointmentDate = cloneString(b.AppointmentDate)
	b.AppointmentTime = cloneString(b.AppointmentTime)
	b.AdditionalNotes = cloneString(b.AdditionalNotes)
	return b
}

func (r *BookingRepository) Create(_ context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now()
	}
	r.rows.put(b.ID, cloneBooking(*b))
	return nil
}

func (r *BookingRepository) Get(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = cloneBooking(b)
	return &b, nil
}

func (r *BookingRepository) List(_ context.Context) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.rows.all() {
		out = append(out, cloneBooking(b))
	}
	return newestFirst(out), nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.rows.all() {
		if b.OwnedBy(userID) {
			out = append(out, cloneBooking(b))
		}
	}
	return newestFirst(out), nil
}

func (r *BookingRepository) Update(_ context.Context, b *models.Booking) error {
	if !r.rows.replace(b.ID, cloneBooking(*b)) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

var _ domainBooking.Repository = (*BookingRepository)(nil)

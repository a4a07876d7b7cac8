package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
	"github.com/BruksfildServices01/physio-clinic/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor domainBooking.Actor

	TherapyID    string
	PatientName  string
	PatientPhone string
	PatientEmail *string
	PatientAge   *int

	AppointmentDate *string
	AppointmentTime *string
	AdditionalNotes *string

	Status *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo      domainBooking.Repository
	therapies catalog.TherapyRepository
	audit     audit.Recorder
	notifier  notify.Notifier
}

func NewCreateBooking(
	repo domainBooking.Repository,
	therapies catalog.TherapyRepository,
	audit audit.Recorder,
	notifier notify.Notifier,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		therapies: therapies,
		audit:     audit,
		notifier:  notifier,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	status, err := domainBooking.StatusOnCreate(in.Actor, in.Status)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.PatientName)
	if name == "" {
		return nil, errBlankPatientName
	}
	phone := strings.TrimSpace(in.PatientPhone)
	if phone == "" {
		return nil, errBlankPatientPhone
	}

	therapy, err := loadTherapy(ctx, uc.therapies, in.TherapyID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		TherapyID:       therapy.ID,
		PatientName:     name,
		PatientPhone:    phone,
		PatientEmail:    emptyToNil(in.PatientEmail),
		PatientAge:      in.PatientAge,
		AppointmentDate: emptyToNil(in.AppointmentDate),
		AppointmentTime: emptyToNil(in.AppointmentTime),
		AdditionalNotes: emptyToNil(in.AdditionalNotes),
		Status:          string(status),
	}
	if !in.Actor.IsGuest() {
		owner := in.Actor.UserID
		b.UserID = &owner
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   b.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   audit.EntityBooking,
		EntityID: &b.ID,
		Metadata: map[string]any{
			"status":    b.Status,
			"therapyId": b.TherapyID,
			"guest":     b.UserID == nil,
		},
	})
	uc.notifier.BookingCreated(*b, therapy.Name)

	return b, nil
}

// ======================================================
// HELPERS
// ======================================================

var (
	errBookingNotFound   = httperr.NotFoundErr("booking_not_found", "Booking not found.")
	errBlankPatientName  = httperr.Validation("invalid_patient_name", "Patient name cannot be empty.")
	errBlankPatientPhone = httperr.Validation("invalid_patient_phone", "Patient phone cannot be empty.")
)

func loadTherapy(ctx context.Context, therapies catalog.TherapyRepository, id string) (*models.Therapy, error) {
	t, err := therapies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Validation("therapy_not_found", "The selected therapy does not exist.")
		}
		return nil, err
	}
	return t, nil
}

func loadBooking(ctx context.Context, repo domainBooking.Repository, id string) (*models.Booking, error) {
	b, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

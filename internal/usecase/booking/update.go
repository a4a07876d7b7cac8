package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/physio-clinic/internal/audit"
	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// UpdateBookingInput is a partial update: nil fields are left unchanged.
type UpdateBookingInput struct {
	Actor domainBooking.Actor
	ID    string

	TherapyID    *string
	PatientName  *string
	PatientPhone *string
	PatientEmail *string
	PatientAge   *int

	AppointmentDate *string
	AppointmentTime *string
	AdditionalNotes *string

	Status *string
}

type UpdateBooking struct {
	repo      domainBooking.Repository
	therapies catalog.TherapyRepository
	audit     audit.Recorder
}

func NewUpdateBooking(
	repo domainBooking.Repository,
	therapies catalog.TherapyRepository,
	audit audit.Recorder,
) *UpdateBooking {
	return &UpdateBooking{
		repo:      repo,
		therapies: therapies,
		audit:     audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := loadBooking(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}

	if err := domainBooking.CanAccess(in.Actor, b); err != nil {
		return nil, err
	}

	previous := domainBooking.Status(b.Status)
	next := previous
	if in.Status != nil {
		next, err = domainBooking.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domainBooking.CanTransition(in.Actor, b, next); err != nil {
			return nil, err
		}
	}

	if in.TherapyID != nil && *in.TherapyID != b.TherapyID {
		therapy, err := loadTherapy(ctx, uc.therapies, *in.TherapyID)
		if err != nil {
			return nil, err
		}
		b.TherapyID = therapy.ID
	}

	if in.PatientName != nil {
		name := strings.TrimSpace(*in.PatientName)
		if name == "" {
			return nil, errBlankPatientName
		}
		b.PatientName = name
	}
	if in.PatientPhone != nil {
		phone := strings.TrimSpace(*in.PatientPhone)
		if phone == "" {
			return nil, errBlankPatientPhone
		}
		b.PatientPhone = phone
	}
	if in.PatientEmail != nil {
		b.PatientEmail = emptyToNil(in.PatientEmail)
	}
	if in.PatientAge != nil {
		b.PatientAge = in.PatientAge
	}
	if in.AppointmentDate != nil {
		b.AppointmentDate = emptyToNil(in.AppointmentDate)
	}
	if in.AppointmentTime != nil {
		b.AppointmentTime = emptyToNil(in.AppointmentTime)
	}
	if in.AdditionalNotes != nil {
		b.AdditionalNotes = emptyToNil(in.AdditionalNotes)
	}
	b.Status = string(next)

	if err := uc.repo.Update(ctx, b); err != nil {
		// Deleted between the read above and this write.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBookingNotFound
		}
		return nil, err
	}

	action := audit.ActionBookingUpdated
	switch {
	case next != previous && next == domainBooking.StatusConfirmed:
		action = audit.ActionBookingConfirmed
	case next != previous && next == domainBooking.StatusCancelled:
		action = audit.ActionBookingCancelled
	}

	actorID := actorRef(in.Actor)
	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   action,
		Entity:   audit.EntityBooking,
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   next,
		},
	})

	return b, nil
}

func actorRef(a domainBooking.Actor) *string {
	if a.IsGuest() {
		return nil
	}
	id := a.UserID
	return &id
}

package dto

import (
	domainBooking "github.com/BruksfildServices01/physio-clinic/internal/domain/booking"
	usecaseBooking "github.com/BruksfildServices01/physio-clinic/internal/usecase/booking"
)

// CreateBookingRequest needs only the patient's name and phone and the
// therapy. Everything else may arrive as null.
type CreateBookingRequest struct {
	TherapyID       string  `json:"therapyId" binding:"required,notblank"`
	PatientName     string  `json:"patientName" binding:"required,notblank"`
	PatientPhone    string  `json:"patientPhone" binding:"required,notblank"`
	PatientEmail    *string `json:"patientEmail"`
	PatientAge      *int    `json:"patientAge" binding:"omitempty,min=0,max=150"`
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
	AdditionalNotes *string `json:"additionalNotes"`
	Status          *string `json:"status"`
}

func (r CreateBookingRequest) Input(actor domainBooking.Actor) usecaseBooking.CreateBookingInput {
	return usecaseBooking.CreateBookingInput{
		Actor:           actor,
		TherapyID:       r.TherapyID,
		PatientName:     r.PatientName,
		PatientPhone:    r.PatientPhone,
		PatientEmail:    r.PatientEmail,
		PatientAge:      r.PatientAge,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
		AdditionalNotes: r.AdditionalNotes,
		Status:          r.Status,
	}
}

type UpdateBookingRequest struct {
	TherapyID       *string `json:"therapyId" binding:"omitempty,notblank"`
	PatientName     *string `json:"patientName" binding:"omitempty,notblank"`
	PatientPhone    *string `json:"patientPhone" binding:"omitempty,notblank"`
	PatientEmail    *string `json:"patientEmail"`
	PatientAge      *int    `json:"patientAge" binding:"omitempty,min=0,max=150"`
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
	AdditionalNotes *string `json:"additionalNotes"`
	Status          *string `json:"status"`
}

func (r UpdateBookingRequest) Input(actor domainBooking.Actor, id string) usecaseBooking.UpdateBookingInput {
	return usecaseBooking.UpdateBookingInput{
		Actor:           actor,
		ID:              id,
		TherapyID:       r.TherapyID,
		PatientName:     r.PatientName,
		PatientPhone:    r.PatientPhone,
		PatientEmail:    r.PatientEmail,
		PatientAge:      r.PatientAge,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
		AdditionalNotes: r.AdditionalNotes,
		Status:          r.Status,
	}
}

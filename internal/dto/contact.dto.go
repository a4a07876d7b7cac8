package dto

import (
	"strings"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type CreateContactRequest struct {
	Name    string  `json:"name" binding:"required,notblank"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject" binding:"required,notblank"`
	Message string  `json:"message" binding:"required,notblank"`
}

func (r CreateContactRequest) Model() *models.Contact {
	return &models.Contact{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:   trimmedOrNil(r.Phone),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

package dto

import (
	"strings"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// ======================================================
// THERAPY
// ======================================================

type CreateTherapyRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	PriceMin    *int   `json:"priceMin" binding:"required,min=0"`
	PriceMax    *int   `json:"priceMax" binding:"required,min=0"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	IsActive    *bool  `json:"isActive"`
}

func (r CreateTherapyRequest) Model() *models.Therapy {
	return &models.Therapy{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		PriceMin:    *r.PriceMin,
		PriceMax:    *r.PriceMax,
		Duration:    r.Duration,
		IsActive:    boolOr(r.IsActive, true),
	}
}

// UpdateTherapyRequest leaves absent fields unchanged.
type UpdateTherapyRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	PriceMin    *int    `json:"priceMin" binding:"omitempty,min=0"`
	PriceMax    *int    `json:"priceMax" binding:"omitempty,min=0"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateTherapyRequest) Apply(t *models.Therapy) {
	setString(&t.Name, r.Name)
	setString(&t.Description, r.Description)
	setInt(&t.PriceMin, r.PriceMin)
	setInt(&t.PriceMax, r.PriceMax)
	setInt(&t.Duration, r.Duration)
	if r.IsActive != nil {
		t.IsActive = *r.IsActive
	}
}

// ======================================================
// PHYSIOTHERAPIST
// ======================================================

type CreatePhysiotherapistRequest struct {
	Name            string  `json:"name" binding:"required,notblank"`
	Role            string  `json:"role" binding:"required,notblank"`
	Description     string  `json:"description" binding:"required,notblank"`
	Image           *string `json:"image"`
	Experience      string  `json:"experience" binding:"required,notblank"`
	Specializations string  `json:"specializations" binding:"required,notblank"`
	IsActive        *bool   `json:"isActive"`
}

func (r CreatePhysiotherapistRequest) Model() *models.Physiotherapist {
	return &models.Physiotherapist{
		Name:            strings.TrimSpace(r.Name),
		Role:            strings.TrimSpace(r.Role),
		Description:     strings.TrimSpace(r.Description),
		Image:           trimmedOrNil(r.Image),
		Experience:      strings.TrimSpace(r.Experience),
		Specializations: strings.TrimSpace(r.Specializations),
		IsActive:        boolOr(r.IsActive, true),
	}
}

type UpdatePhysiotherapistRequest struct {
	Name            *string `json:"name" binding:"omitempty,notblank"`
	Role            *string `json:"role" binding:"omitempty,notblank"`
	Description     *string `json:"description" binding:"omitempty,notblank"`
	Image           *string `json:"image"`
	Experience      *string `json:"experience" binding:"omitempty,notblank"`
	Specializations *string `json:"specializations" binding:"omitempty,notblank"`
	IsActive        *bool   `json:"isActive"`
}

func (r UpdatePhysiotherapistRequest) Apply(p *models.Physiotherapist) {
	setString(&p.Name, r.Name)
	setString(&p.Role, r.Role)
	setString(&p.Description, r.Description)
	setString(&p.Experience, r.Experience)
	setString(&p.Specializations, r.Specializations)
	if r.Image != nil {
		p.Image = trimmedOrNil(r.Image)
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

// ======================================================
// HELPERS
// ======================================================

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

package catalog

import (
	"context"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type ListFilter struct {
	IncludeInactive bool
}

type TherapyRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Therapy, error)
	Get(ctx context.Context, id string) (*models.Therapy, error)
	Create(ctx context.Context, t *models.Therapy) error
	Update(ctx context.Context, t *models.Therapy) error
	FindByName(ctx context.Context, name string) (*models.Therapy, error)
}

type PhysiotherapistRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Physiotherapist, error)
	Get(ctx context.Context, id string) (*models.Physiotherapist, error)
	Create(ctx context.Context, p *models.Physiotherapist) error
	Update(ctx context.Context, p *models.Physiotherapist) error
	Delete(ctx context.Context, id string) error
	FindByName(ctx context.Context, name string) (*models.Physiotherapist, error)
}

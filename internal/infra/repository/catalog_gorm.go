package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// --------------------------------------------------
// Therapies
// --------------------------------------------------

type TherapyGormRepository struct {
	db *gorm.DB
}

func NewTherapyGormRepository(db *gorm.DB) *TherapyGormRepository {
	return &TherapyGormRepository{db: db}
}

func (r *TherapyGormRepository) List(ctx context.Context, f catalog.ListFilter) ([]models.Therapy, error) {
	q := r.db.WithContext(ctx)
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}

	therapies := []models.Therapy{}
	if err := q.Order("name ASC").Find(&therapies).Error; err != nil {
		return nil, err
	}
	return therapies, nil
}

func (r *TherapyGormRepository) Get(ctx context.Context, id string) (*models.Therapy, error) {
	var t models.Therapy
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TherapyGormRepository) FindByName(ctx context.Context, name string) (*models.Therapy, error) {
	var t models.Therapy
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TherapyGormRepository) Create(ctx context.Context, t *models.Therapy) error {
	// Select("*") keeps an explicit IsActive=false from being replaced by
	// the column default.
	return r.db.WithContext(ctx).Select("*").Create(t).Error
}

func (r *TherapyGormRepository) Update(ctx context.Context, t *models.Therapy) error {
	return updateExisting(ctx, r.db, t, t.ID)
}

// --------------------------------------------------
// Physiotherapists
// --------------------------------------------------

type PhysiotherapistGormRepository struct {
	db *gorm.DB
}

func NewPhysiotherapistGormRepository(db *gorm.DB) *PhysiotherapistGormRepository {
	return &PhysiotherapistGormRepository{db: db}
}

func (r *PhysiotherapistGormRepository) List(ctx context.Context, f catalog.ListFilter) ([]models.Physiotherapist, error) {
	q := r.db.WithContext(ctx)
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}

	staff := []models.Physiotherapist{}
	if err := q.Order("created_at ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *PhysiotherapistGormRepository) Get(ctx context.Context, id string) (*models.Physiotherapist, error) {
	var p models.Physiotherapist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PhysiotherapistGormRepository) FindByName(ctx context.Context, name string) (*models.Physiotherapist, error) {
	var p models.Physiotherapist
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PhysiotherapistGormRepository) Create(ctx context.Context, p *models.Physiotherapist) error {
	return r.db.WithContext(ctx).Select("*").Create(p).Error
}

func (r *PhysiotherapistGormRepository) Update(ctx context.Context, p *models.Physiotherapist) error {
	return updateExisting(ctx, r.db, p, p.ID)
}

func (r *PhysiotherapistGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Physiotherapist{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var (
	_ catalog.TherapyRepository         = (*TherapyGormRepository)(nil)
	_ catalog.PhysiotherapistRepository = (*PhysiotherapistGormRepository)(nil)
)

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/contact"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(ctx context.Context, c *models.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactGormRepository) List(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactGormRepository) Get(ctx context.Context, id string) (*models.Contact, error) {
	var c models.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Compile-time check
var _ contact.Repository = (*ContactGormRepository)(nil)

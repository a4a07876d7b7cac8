package memory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/contact"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type contactRow = models.Contact

type ContactRepository struct {
	rows *table[contactRow]
	now  func() time.Time
}

func cloneContact(c contactRow) models.Contact {
	c.Phone = cloneString(c.Phone)
	return c
}

func (r *ContactRepository) Create(_ context.Context, c *models.Contact) error {
	if c.ID == "" {
		c.ID = models.NewID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}
	r.rows.put(c.ID, cloneContact(*c))
	return nil
}

func (r *ContactRepository) List(_ context.Context) ([]models.Contact, error) {
	out := []models.Contact{}
	for _, c := range r.rows.all() {
		out = append(out, cloneContact(c))
	}
	return newestFirst(out), nil
}

func (r *ContactRepository) Get(_ context.Context, id string) (*models.Contact, error) {
	c, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	c = cloneContact(c)
	return &c, nil
}

var _ contact.Repository = (*ContactRepository)(nil)

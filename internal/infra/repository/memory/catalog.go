package memory

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type therapyRow = models.Therapy

type TherapyRepository struct {
	rows *table[therapyRow]
}

func (r *TherapyRepository) List(_ context.Context, f catalog.ListFilter) ([]models.Therapy, error) {
	out := []models.Therapy{}
	for _, t := range r.rows.all() {
		if t.IsActive || f.IncludeInactive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TherapyRepository) Get(_ context.Context, id string) (*models.Therapy, error) {
	t, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *TherapyRepository) FindByName(_ context.Context, name string) (*models.Therapy, error) {
	for _, t := range r.rows.all() {
		if strings.EqualFold(t.Name, name) {
			t := t
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *TherapyRepository) Create(_ context.Context, t *models.Therapy) error {
	if t.ID == "" {
		t.ID = models.NewID()
	}
	r.rows.put(t.ID, *t)
	return nil
}

func (r *TherapyRepository) Update(_ context.Context, t *models.Therapy) error {
	if !r.rows.replace(t.ID, *t) {
		return domain.ErrNotFound
	}
	return nil
}

type physioRow = models.Physiotherapist

type PhysiotherapistRepository struct {
	rows *table[physioRow]
	now  func() time.Time
}

func clonePhysio(p physioRow) models.Physiotherapist {
	p.Image = cloneString(p.Image)
	return p
}

func (r *PhysiotherapistRepository) List(_ context.Context, f catalog.ListFilter) ([]models.Physiotherapist, error) {
	out := []models.Physiotherapist{}
	for _, p := range r.rows.all() {
		if p.IsActive || f.IncludeInactive {
			out = append(out, clonePhysio(p))
		}
	}
	return out, nil
}

func (r *PhysiotherapistRepository) Get(_ context.Context, id string) (*models.Physiotherapist, error) {
	p, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = clonePhysio(p)
	return &p, nil
}

func (r *PhysiotherapistRepository) FindByName(_ context.Context, name string) (*models.Physiotherapist, error) {
	for _, p := range r.rows.all() {
		if strings.EqualFold(p.Name, name) {
			p = clonePhysio(p)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *PhysiotherapistRepository) Create(_ context.Context, p *models.Physiotherapist) error {
	if p.ID == "" {
		p.ID = models.NewID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now()
	}
	r.rows.put(p.ID, clonePhysio(*p))
	return nil
}

func (r *PhysiotherapistRepository) Update(_ context.Context, p *models.Physiotherapist) error {
	if !r.rows.replace(p.ID, clonePhysio(*p)) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PhysiotherapistRepository) Delete(_ context.Context, id string) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

var (
	_ catalog.TherapyRepository         = (*TherapyRepository)(nil)
	_ catalog.PhysiotherapistRepository = (*PhysiotherapistRepository)(nil)
)

package memory

import (
	"context"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/auditlog"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type auditRow = models.AuditLog

type AuditLogRepository struct {
	rows *table[auditRow]
	now  func() time.Time
}

func (r *AuditLogRepository) Create(_ context.Context, l *models.AuditLog) error {
	if l.ID == "" {
		l.ID = models.NewID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.now()
	}
	row := *l
	row.UserID = cloneString(l.UserID)
	row.EntityID = cloneString(l.EntityID)
	r.rows.put(row.ID, row)
	return nil
}

func (r *AuditLogRepository) List(_ context.Context, f auditlog.Filter) ([]models.AuditLog, int64, error) {
	matched := []models.AuditLog{}
	for _, l := range r.rows.all() {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}
	matched = newestFirst(matched)

	total := int64(len(matched))
	start := min(f.Offset, len(matched))
	end := len(matched)
	if f.Limit > 0 {
		end = min(start+f.Limit, len(matched))
	}
	return matched[start:end], total, nil
}

var _ auditlog.Repository = (*AuditLogRepository)(nil)

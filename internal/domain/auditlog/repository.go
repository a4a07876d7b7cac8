package auditlog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, l *models.AuditLog) error
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/auditlog"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

type Logger struct {
	repo auditlog.Repository
}

func New(repo auditlog.Repository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.repo.Create(ctx, &entry)
}

package audit

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/physio-clinic/internal/domain/auditlog"
	"github.com/BruksfildServices01/physio-clinic/internal/infra/repository/memory"
)

func TestDispatcherPersistsEvents(t *testing.T) {
	store := memory.NewStore()
	d := NewDispatcher(New(store.AuditLogs), nil)

	userID := "user-1"
	bookingID := "booking-1"
	d.Dispatch(Event{
		UserID:   &userID,
		Action:   ActionBookingCreated,
		Entity:   EntityBooking,
		EntityID: &bookingID,
		Metadata: map[string]string{"status": "pending"},
	})
	d.Dispatch(Event{Action: ActionUserRegistered, Entity: EntityUser})
	d.Close()

	logs, total, err := store.AuditLogs.List(context.Background(), auditlog.Filter{Action: ActionBookingCreated})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(logs) != 1 {
		t.Fatalf("expected one booking_created entry, got %d", total)
	}
	if logs[0].Metadata != `{"status":"pending"}` {
		t.Fatalf("unexpected metadata %q", logs[0].Metadata)
	}
	if logs[0].EntityID == nil || *logs[0].EntityID != bookingID {
		t.Fatalf("unexpected entity id %v", logs[0].EntityID)
	}
}

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/auditlog"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

func TestUsersRejectDuplicateEmail(t *testing.T) {
	t.Parallel()
	store := NewStore()
	ctx := context.Background()

	if err := store.Users.Create(ctx, &models.User{Email: "a@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := store.Users.Create(ctx, &models.User{Email: "a@example.com"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if _, err := store.Users.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingsAreCopied(t *testing.T) {
	t.Parallel()
	store := NewStore()
	ctx := context.Background()

	notes := "first visit"
	b := &models.Booking{TherapyID: "t-1", PatientName: "Asha", PatientPhone: "1", AdditionalNotes: &notes, Status: "pending"}
	if err := store.Bookings.Create(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	notes = "changed by caller"
	got, err := store.Bookings.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got.AdditionalNotes != "first visit" {
		t.Fatalf("store shares memory with caller: %q", *got.AdditionalNotes)
	}

	*got.AdditionalNotes = "changed again"
	again, _ := store.Bookings.Get(ctx, b.ID)
	if *again.AdditionalNotes != "first visit" {
		t.Fatal("returned records must be copies")
	}
}

func TestUpdateAfterDeleteStaysDeleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("booking", func(t *testing.T) {
		store := NewStore()
		b := &models.Booking{TherapyID: "t-1", PatientName: "Asha", PatientPhone: "1", Status: "pending"}
		if err := store.Bookings.Create(ctx, b); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := store.Bookings.Delete(ctx, b.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		b.Status = "confirmed"
		if err := store.Bookings.Update(ctx, b); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if _, err := store.Bookings.Get(ctx, b.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("deleted booking came back: %v", err)
		}
	})

	t.Run("physiotherapist", func(t *testing.T) {
		store := NewStore()
		p := &models.Physiotherapist{Name: "Dr. Mehta", Role: "Lead", Description: "d", Experience: "10y", Specializations: "Spine"}
		if err := store.Physiotherapists.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := store.Physiotherapists.Delete(ctx, p.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		p.Role = "Senior"
		if err := store.Physiotherapists.Update(ctx, p); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		all, err := store.Physiotherapists.List(ctx, catalog.ListFilter{IncludeInactive: true})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("deleted physiotherapist came back: %+v", all)
		}
	})

	t.Run("unknown therapy", func(t *testing.T) {
		store := NewStore()
		err := store.Therapies.Update(ctx, &models.Therapy{ID: "missing", Name: "x"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAuditLogFilters(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := base
	store := NewStoreWithClock(func() time.Time { return now })
	ctx := context.Background()

	for i, action := range []string{"user_registered", "booking_created", "booking_created"} {
		now = base.Add(time.Duration(i) * 24 * time.Hour)
		if err := store.AuditLogs.Create(ctx, &models.AuditLog{Action: action, Entity: "booking"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	logs, total, _ := store.AuditLogs.List(ctx, auditlog.Filter{Action: "booking_created"})
	if total != 2 || len(logs) != 2 {
		t.Fatalf("expected 2 booking logs, got %d", total)
	}
	if !logs[0].CreatedAt.After(logs[1].CreatedAt) {
		t.Fatal("expected newest first")
	}

	from := base.Add(24 * time.Hour)
	to := base.Add(48 * time.Hour)
	_, total, _ = store.AuditLogs.List(ctx, auditlog.Filter{From: &from, To: &to})
	if total != 1 {
		t.Fatalf("expected 1 log in range, got %d", total)
	}

	page, total, _ := store.AuditLogs.List(ctx, auditlog.Filter{Limit: 1, Offset: 2})
	if total != 3 || len(page) != 1 || page[0].Action != "user_registered" {
		t.Fatalf("unexpected page %+v (total %d)", page, total)
	}
}

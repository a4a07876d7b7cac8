package booking

import (
	"testing"

	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestCanTransition(t *testing.T) {
	t.Parallel()

	owner := Actor{UserID: "owner-1"}
	stranger := Actor{UserID: "someone-else"}
	admin := Actor{UserID: "admin-1", IsAdmin: true}

	tests := []struct {
		name    string
		actor   Actor
		from    Status
		to      Status
		guest   bool
		allowed bool
	}{
		{name: "admin confirms pending", actor: admin, from: StatusPending, to: StatusConfirmed, allowed: true},
		{name: "owner cannot confirm", actor: owner, from: StatusPending, to: StatusConfirmed},
		{name: "owner cancels pending", actor: owner, from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "admin cancels pending", actor: admin, from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "stranger cannot cancel", actor: stranger, from: StatusPending, to: StatusCancelled},
		{name: "confirmed back to pending", actor: admin, from: StatusConfirmed, to: StatusPending},
		{name: "confirmed to cancelled", actor: admin, from: StatusConfirmed, to: StatusCancelled},
		{name: "cancelled to confirmed", actor: admin, from: StatusCancelled, to: StatusConfirmed},
		{name: "same status is a no-op", actor: owner, from: StatusConfirmed, to: StatusConfirmed, allowed: true},
		{name: "guest booking cancelled by admin", actor: admin, from: StatusPending, to: StatusCancelled, guest: true, allowed: true},
		{name: "guest booking not cancellable by user", actor: owner, from: StatusPending, to: StatusCancelled, guest: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := &models.Booking{Status: string(tc.from), UserID: ptr("owner-1")}
			if tc.guest {
				b.UserID = nil
			}

			err := CanTransition(tc.actor, b, tc.to)
			if tc.allowed && err != nil {
				t.Fatalf("expected transition to be allowed, got %v", err)
			}
			if !tc.allowed {
				kind, ok := httperr.KindOf(err)
				if !ok || kind != httperr.KindForbidden {
					t.Fatalf("expected forbidden error, got %v", err)
				}
			}
		})
	}
}

func TestStatusOnCreate(t *testing.T) {
	t.Parallel()

	guest := Actor{}
	admin := Actor{UserID: "admin-1", IsAdmin: true}

	if st, err := StatusOnCreate(guest, nil); err != nil || st != StatusPending {
		t.Fatalf("expected pending default, got %q, %v", st, err)
	}
	if st, err := StatusOnCreate(guest, ptr("pending")); err != nil || st != StatusPending {
		t.Fatalf("expected explicit pending to be accepted, got %q, %v", st, err)
	}
	if _, err := StatusOnCreate(guest, ptr("confirmed")); !httperr.IsBusiness(err, "admin_required") {
		t.Fatalf("expected admin_required for guest, got %v", err)
	}
	if st, err := StatusOnCreate(admin, ptr("confirmed")); err != nil || st != StatusConfirmed {
		t.Fatalf("expected admin to set confirmed, got %q, %v", st, err)
	}
	if _, err := StatusOnCreate(admin, ptr("done")); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestCanAccess(t *testing.T) {
	t.Parallel()

	b := &models.Booking{UserID: ptr("owner-1")}
	if err := CanAccess(Actor{UserID: "owner-1"}, b); err != nil {
		t.Fatalf("owner should have access: %v", err)
	}
	if err := CanAccess(Actor{UserID: "x", IsAdmin: true}, b); err != nil {
		t.Fatalf("admin should have access: %v", err)
	}
	if err := CanAccess(Actor{UserID: "x"}, b); err == nil {
		t.Fatal("stranger should not have access")
	}
	if err := CanAccess(Actor{}, &models.Booking{}); err == nil {
		t.Fatal("guest should not access a guest booking")
	}
}

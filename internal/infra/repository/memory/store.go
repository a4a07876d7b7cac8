// Package memory holds map-backed repositories for tests and local runs
// without Postgres. Records are copied in and out so callers never share
// memory with the store.
package memory

import (
	"sync"
	"time"
)

// Store groups the repositories that share one clock.
type Store struct {
	Users            *UserRepository
	Therapies        *TherapyRepository
	Physiotherapists *PhysiotherapistRepository
	Bookings         *BookingRepository
	Contacts         *ContactRepository
	AuditLogs        *AuditLogRepository
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		Users:            &UserRepository{rows: newTable[userRow](), now: now},
		Therapies:        &TherapyRepository{rows: newTable[therapyRow]()},
		Physiotherapists: &PhysiotherapistRepository{rows: newTable[physioRow](), now: now},
		Bookings:         &BookingRepository{rows: newTable[bookingRow](), now: now},
		Contacts:         &ContactRepository{rows: newTable[contactRow](), now: now},
		AuditLogs:        &AuditLogRepository{rows: newTable[auditRow](), now: now},
	}
}

// table keeps insertion order so listings are deterministic.
type table[T any] struct {
	mu    sync.RWMutex
	byID  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{byID: map[string]T{}}
}

func (t *table[T]) put(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byID[id]; !ok {
		t.order = append(t.order, id)
	}
	t.byID[id] = v
}

// insert stores v unless check reports a conflict against existing rows.
func (t *table[T]) insert(id string, v T, check func(existing T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if check != nil {
		for _, row := range t.byID {
			if err := check(row); err != nil {
				return err
			}
		}
	}
	if _, ok := t.byID[id]; !ok {
		t.order = append(t.order, id)
	}
	t.byID[id] = v
	return nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.byID[id]
	return v, ok
}

// replace overwrites an existing row and reports false when id is absent.
func (t *table[T]) replace(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byID[id]; !ok {
		return false
	}
	t.byID[id] = v
	return true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// all returns rows in insertion order.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

func newestFirst[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

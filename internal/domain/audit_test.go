package domain_test

import (
	"errors"
	"testing"

	"github.com/hotelops/booking-ledger/internal/audit"
	"github.com/hotelops/booking-ledger/internal/domain"
)

type memRecorder struct {
	events []audit.Event
	fail   bool
}

func (m *memRecorder) Record(e audit.Event) error {
	if m.fail {
		return errors.New("sink down")
	}
	m.events = append(m.events, e)
	return nil
}

func TestLedger_AuditEvents(t *testing.T) {
	rec := &memRecorder{}
	ledger := domain.NewLedger("test", domain.WithAuditRecorder(rec))

	room, _ := ledger.RegisterRoom(101, "Single", 5000)
	alice, _ := ledger.RegisterGuest("Alice", "Johnson", 0)
	res, err := ledger.Reserve(alice, room, "2025-10-10", "2025-10-12")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.ProcessPayment(res); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Cancel(res); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"room.registered",
		"guest.registered",
		"reservation.created",
		"payment.settled",
		"reservation.cancelled",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(rec.events))
	}
	for i, action := range want {
		if rec.events[i].Action != action {
			t.Errorf("event %d: got %q, want %q", i, rec.events[i].Action, action)
		}
		if rec.events[i].Time.IsZero() {
			t.Errorf("event %d has no timestamp", i)
		}
	}

	// Idempotent re-registration records nothing.
	before := len(rec.events)
	if _, err := ledger.RegisterGuest("Alice", "Johnson", 0); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != before {
		t.Error("re-registration emitted an event")
	}
}

func TestLedger_AuditFailureDoesNotFailOperation(t *testing.T) {
	ledger := domain.NewLedger("test", domain.WithAuditRecorder(&memRecorder{fail: true}))

	room, err := ledger.RegisterRoom(101, "Single", 5000)
	if err != nil {
		t.Fatalf("sink failure leaked into the operation: %v", err)
	}
	alice, err := ledger.RegisterGuest("Alice", "Johnson", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.Reserve(alice, room, "2025-10-10", "2025-10-12"); err != nil {
		t.Fatal(err)
	}
}

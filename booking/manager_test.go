package booking

import (
	"errors"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(DefaultSchedule(), MemoryDSN)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func TestManagerSessions(t *testing.T) {
	mgr := newTestManager(t)

	sessions := mgr.Sessions()
	if len(sessions) != 8 {
		t.Fatalf("want 8 sessions from default schedule, got %d", len(sessions))
	}

	// Sorted: each date lists Stretch (7:30pm) before Hatha (8:30pm).
	if sessions[0].Name != "Stretch" || sessions[1].Name != "Hatha" {
		t.Fatalf("first date not in start-time order: %+v", sessions[:2])
	}

	groups := mgr.SessionsByDate()
	if len(groups) != 4 {
		t.Fatalf("want 4 date groups, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g.Sessions) != 2 {
			t.Fatalf("group %s: want 2 sessions, got %d", g.Date, len(g.Sessions))
		}
	}
}

func TestManagerSessionLookup(t *testing.T) {
	mgr := newTestManager(t)

	s, ok := mgr.Session(1)
	if !ok {
		t.Fatalf("session 1 should exist")
	}
	if s.Name != "Stretch" || s.Date != "2023-05-04" {
		t.Fatalf("unexpected session 1: %+v", s)
	}

	if _, ok := mgr.Session(99); ok {
		t.Fatalf("session 99 should not exist")
	}
}

// TestBookingFlow walks the whole book/duplicate/cancel scenario.
func TestBookingFlow(t *testing.T) {
	mgr := newTestManager(t)

	if err := mgr.Book("Alice", 1); err != nil {
		t.Fatalf("Alice's booking failed: %v", err)
	}
	n, _ := mgr.CountForSession(1)
	if n != 1 {
		t.Fatalf("want count 1 after Alice books, got %d", n)
	}

	// Booking the same class twice is rejected and changes nothing.
	if err := mgr.Book("Alice", 1); !errors.Is(err, ErrDuplicateBooking) {
		t.Fatalf("want duplicate error, got %v", err)
	}
	n, _ = mgr.CountForSession(1)
	if n != 1 {
		t.Fatalf("duplicate attempt changed count to %d", n)
	}

	if err := mgr.Book("Bob", 1); err != nil {
		t.Fatalf("Bob's booking failed: %v", err)
	}
	n, _ = mgr.CountForSession(1)
	if n != 2 {
		t.Fatalf("want count 2 after Bob books, got %d", n)
	}

	if err := mgr.Cancel("Alice", 1); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	grouped, err := mgr.BookingsBySession()
	if err != nil {
		t.Fatalf("grouped bookings: %v", err)
	}
	members := grouped[1]
	if len(members) != 1 || members[0].UserName != "Bob" {
		t.Fatalf("want only Bob booked into session 1, got %+v", members)
	}
}

func TestBookingsBySessionSkipsUnknownSessions(t *testing.T) {
	mgr := newTestManager(t)

	if err := mgr.Book("Zoe", 999); err != nil {
		t.Fatalf("booking an unknown session should be accepted: %v", err)
	}
	if err := mgr.Book("Zoe", 1); err != nil {
		t.Fatalf("book: %v", err)
	}

	grouped, err := mgr.BookingsBySession()
	if err != nil {
		t.Fatalf("grouped bookings: %v", err)
	}
	if _, ok := grouped[999]; ok {
		t.Fatalf("dangling booking leaked into grouped view")
	}
	if len(grouped[1]) != 1 {
		t.Fatalf("want Zoe's valid booking in view, got %+v", grouped)
	}
}

func TestUserBookings(t *testing.T) {
	mgr := newTestManager(t)

	mgr.Book("Alice", 1)
	mgr.Book("Alice", 4)
	mgr.Book("Alice", 999) // dangling, never resolved
	mgr.Book("Bob", 1)

	mine, err := mgr.UserBookings("Alice")
	if err != nil {
		t.Fatalf("user bookings: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("want 2 resolved bookings for Alice, got %d", len(mine))
	}
	if mine[0].Session.ID != 1 || mine[1].Session.ID != 4 {
		t.Fatalf("unexpected sessions: %+v", mine)
	}
	if mine[0].Booking.UserName != "Alice" {
		t.Fatalf("unexpected booking owner: %+v", mine[0].Booking)
	}
}

func TestManagerRejectsEmptyName(t *testing.T) {
	mgr := newTestManager(t)

	err := mgr.Book("   ", 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Reason != "Please enter a name" {
		t.Fatalf("unexpected message: %q", verr.Reason)
	}
}

package booking

// Manager ties the fixed session catalog to the booking ledger, keeping
// CLI code simple. The catalog is built once from the schedule and never
// changes; all mutation goes through the ledger.
type Manager struct {
	catalog []Session
	byID    map[int64]Session
	ledger  *Ledger
}

// NewManager builds the catalog from schedule and opens the ledger at
// path (empty path means in-memory).
func NewManager(schedule Schedule, path string) (*Manager, error) {
	ledger, err := NewLedger(path)
	if err != nil {
		return nil, err
	}

	catalog := BuildCatalog(schedule.Dates, schedule.Slots)
	byID := make(map[int64]Session, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	return &Manager{catalog: catalog, byID: byID, ledger: ledger}, nil
}

// Close closes the underlying ledger.
func (m *Manager) Close() error { return m.ledger.Close() }

// ------------------ Catalog views ------------------

// Sessions returns the catalog ordered by date and start time.
func (m *Manager) Sessions() []Session {
	return SortedByDateTime(m.catalog)
}

// SessionsByDate returns the sorted catalog grouped by date.
func (m *Manager) SessionsByDate() []DateGroup {
	return GroupByDate(m.Sessions())
}

// Session looks a session up by id.
func (m *Manager) Session(id int64) (Session, bool) {
	s, ok := m.byID[id]
	return s, ok
}

// ------------------ Ledger operations ------------------

func (m *Manager) Book(userName string, sessionID int64) error {
	return m.ledger.Add(userName, sessionID)
}

func (m *Manager) Cancel(userName string, sessionID int64) error {
	return m.ledger.Remove(userName, sessionID)
}

func (m *Manager) BookingCount() (int, error) { return m.ledger.Count() }

func (m *Manager) CountForSession(sessionID int64) (int, error) {
	return m.ledger.CountForSession(sessionID)
}

// ------------------ Grouped booking views ------------------

// BookingsBySession groups the current bookings by session id, in booking
// order within each session. Bookings whose session id resolves to no
// catalog session are left out of the view.
func (m *Manager) BookingsBySession() (map[int64][]Booking, error) {
	all, err := m.ledger.All()
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]Booking)
	for _, b := range all {
		if _, ok := m.byID[b.SessionID]; !ok {
			continue
		}
		grouped[b.SessionID] = append(grouped[b.SessionID], b)
	}
	return grouped, nil
}

// UserBooking pairs a booking with the session it resolves to.
type UserBooking struct {
	Session Session
	Booking Booking
}

// UserBookings returns one user's bookings resolved against the catalog,
// in booking order. Bookings for unknown sessions are skipped.
func (m *Manager) UserBookings(userName string) ([]UserBooking, error) {
	bookings, err := m.ledger.BookingsForUser(userName)
	if err != nil {
		return nil, err
	}

	var out []UserBooking
	for _, b := range bookings {
		s, ok := m.byID[b.SessionID]
		if !ok {
			continue
		}
		out = append(out, UserBooking{Session: s, Booking: b})
	}
	return out, nil
}

package booking

// Session represents one bookable class occurrence. Sessions are immutable
// after catalog construction; IDs are assigned sequentially starting at 1.
type Session struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"` // calendar date, "2006-01-02"
	Time string `json:"time"` // clock range, e.g. "7:30pm-8:30pm"
}

// Booking records a reservation of one session by one user. ID is the
// storage row id and only establishes insertion order; the booking itself
// is identified by the (UserName, SessionID) pair.
type Booking struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	SessionID int64  `json:"session_id"`
}

// Slot pairs a class name with its time range; the catalog is the cross
// product of the schedule's dates and slots.
type Slot struct {
	Name string `yaml:"name"`
	Time string `yaml:"time"`
}

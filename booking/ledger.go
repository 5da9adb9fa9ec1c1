package booking

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database. This is the default store:
// bookings live only for the lifetime of the process.
const MemoryDSN = ":memory:"

// Ledger holds the mutable set of bookings in a SQLite database. With the
// default in-memory DSN nothing survives process exit; a file path may be
// given for tooling and tests that want to inspect state afterwards.
type Ledger struct {
	db *sql.DB

	addStmt *sql.Stmt
}

// NewLedger opens (or creates) the booking database at path, applies the
// schema, and prepares common statements. An empty path means in-memory.
func NewLedger(path string) (*Ledger, error) {
	if path == "" {
		path = MemoryDSN
	}

	dsn := path
	if path != MemoryDSN {
		// Ensure directory exists so first-run succeeds.
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	ledger := &Ledger{db: db}
	if err := ledger.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return ledger, nil
}

// Close releases prepared statements and closes the database.
func (l *Ledger) Close() error {
	if l.addStmt != nil {
		l.addStmt.Close()
	}
	return l.db.Close()
}

const schemaVersion = 1

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// session_id carries no foreign key: the catalog is not stored here,
	// and a booking for an unknown session is accepted (it just never
	// shows up in any grouped view).
	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS bookings (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_name TEXT NOT NULL,
            session_id INTEGER NOT NULL,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            UNIQUE(user_name, session_id)
        );`); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

func (l *Ledger) prepareStatements() error {
	var err error
	if l.addStmt, err = l.db.Prepare(`INSERT INTO bookings(user_name,session_id) VALUES(?,?)`); err != nil {
		return err
	}
	return nil
}

// Add records a booking of sessionID by userName.
//
// It fails with ErrEmptyName if the name is empty or whitespace-only, and
// with ErrDuplicateBooking if the same (name, session) pair is already
// booked. The session id itself is not checked against any catalog.
func (l *Ledger) Add(userName string, sessionID int64) error {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return ErrEmptyName
	}

	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM bookings WHERE user_name=? AND session_id=?)`, userName, sessionID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return ErrDuplicateBooking
	}

	if _, err := tx.Stmt(l.addStmt).Exec(userName, sessionID); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateBooking
		}
		return err
	}

	return tx.Commit()
}

// Remove deletes the booking matching both fields. Removing a booking that
// does not exist is a no-op, never an error.
func (l *Ledger) Remove(userName string, sessionID int64) error {
	_, err := l.db.Exec(`DELETE FROM bookings WHERE user_name=? AND session_id=?`, strings.TrimSpace(userName), sessionID)
	return err
}

// All returns every booking in insertion order.
func (l *Ledger) All() ([]Booking, error) {
	return l.queryBookings(`SELECT id,user_name,session_id FROM bookings ORDER BY id`)
}

// BookingsForUser returns one user's bookings in insertion order.
func (l *Ledger) BookingsForUser(userName string) ([]Booking, error) {
	return l.queryBookings(`SELECT id,user_name,session_id FROM bookings WHERE user_name=? ORDER BY id`, strings.TrimSpace(userName))
}

func (l *Ledger) queryBookings(query string, args ...any) ([]Booking, error) {
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.UserName, &b.SessionID); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Count returns the total number of bookings.
func (l *Ledger) Count() (int, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}

// CountForSession returns the number of bookings held against one session.
func (l *Ledger) CountForSession(sessionID int64) (int, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM bookings WHERE session_id=?`, sessionID).Scan(&n)
	return n, err
}

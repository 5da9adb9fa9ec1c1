package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"class-booking/booking"
)

// shell is the interactive surface over the booking manager. It keeps the
// current user name and the current error message; the message is replaced
// by each failed action and cleared when a new name is entered.
type shell struct {
	mgr      *booking.Manager
	sc       *bufio.Scanner
	userName string
	errMsg   string
}

func runShell(mgr *booking.Manager) {
	s := &shell{mgr: mgr, sc: bufio.NewScanner(os.Stdin)}
	s.run()
}

func (s *shell) run() {
	fmt.Println("Welcome to the Class Booking System!")
	fmt.Println("Available commands:")
	fmt.Println("  name      - set your name")
	fmt.Println("  classes   - list the class schedule")
	fmt.Println("  book      - book a class by session ID")
	fmt.Println("  cancel    - cancel a booking")
	fmt.Println("  bookings  - show who is booked into each class")
	fmt.Println("  mine      - show your bookings")
	fmt.Println("  exit      - quit")

	for {
		fmt.Print("\n> ")
		if !s.sc.Scan() {
			break
		}

		switch cmd := strings.TrimSpace(s.sc.Text()); cmd {
		case "name":
			s.handleName()
		case "classes":
			printSchedule(os.Stdout, s.mgr)
		case "book":
			s.handleBook()
		case "cancel":
			s.handleCancel()
		case "bookings":
			s.printBookings()
		case "mine":
			s.printMine()
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			// empty line, just reprompt
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}

		if s.errMsg != "" {
			fmt.Println(s.errMsg)
		}
	}
}

// prompt reads one line of input, trimmed. ok is false on EOF.
func (s *shell) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

func (s *shell) handleName() {
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	s.userName = name
	s.errMsg = ""
	if name == "" {
		fmt.Println("Name cleared.")
		return
	}
	fmt.Printf("Hello, %s!\n", name)
}

func (s *shell) handleBook() {
	idStr, ok := s.prompt("Session ID: ")
	if !ok {
		return
	}
	sessionID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fmt.Printf("Invalid session ID: %s\n", idStr)
		return
	}

	s.errMsg = ""
	if err := s.mgr.Book(s.userName, sessionID); err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			s.errMsg = verr.Reason
		} else {
			fmt.Printf("Error booking class: %v\n", err)
		}
		return
	}

	if session, found := s.mgr.Session(sessionID); found {
		fmt.Printf("Booked %s %s - %s for %s\n", session.Date, session.Name, session.Time, s.userName)
	} else {
		fmt.Printf("Booked session %d for %s\n", sessionID, s.userName)
	}
}

func (s *shell) handleCancel() {
	name, ok := s.prompt(fmt.Sprintf("Name (Enter for %q): ", s.userName))
	if !ok {
		return
	}
	if name == "" {
		name = s.userName
	}

	idStr, ok := s.prompt("Session ID: ")
	if !ok {
		return
	}
	sessionID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fmt.Printf("Invalid session ID: %s\n", idStr)
		return
	}

	s.errMsg = ""
	if err := s.mgr.Cancel(name, sessionID); err != nil {
		fmt.Printf("Error cancelling booking: %v\n", err)
		return
	}
	// Cancelling a booking that does not exist is a quiet no-op.
	fmt.Printf("Cancelled booking of session %d for %s\n", sessionID, name)
}

func printSchedule(w io.Writer, mgr *booking.Manager) {
	fmt.Fprintln(w, "Available Classes")
	for _, group := range mgr.SessionsByDate() {
		fmt.Fprintf(w, "\n%s\n", group.Date)
		for _, session := range group.Sessions {
			fmt.Fprintf(w, "  [%d] %s - %s\n", session.ID, session.Name, session.Time)
		}
	}
}

func (s *shell) printBookings() {
	grouped, err := s.mgr.BookingsBySession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("Booked Classes")
	for _, group := range s.mgr.SessionsByDate() {
		fmt.Printf("\n%s\n", group.Date)
		for _, session := range group.Sessions {
			members := grouped[session.ID]
			fmt.Printf("  %s - %s (Count: %d)\n", session.Name, session.Time, len(members))
			for _, b := range members {
				fmt.Printf("    %s\n", b.UserName)
			}
		}
	}
}

func (s *shell) printMine() {
	if s.userName == "" {
		s.errMsg = booking.ErrEmptyName.Reason
		return
	}

	mine, err := s.mgr.UserBookings(s.userName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(mine) == 0 {
		fmt.Printf("No bookings for %s.\n", s.userName)
		return
	}

	fmt.Printf("Bookings for %s:\n", s.userName)
	for _, ub := range mine {
		fmt.Printf("  [%d] %s %s - %s\n", ub.Session.ID, ub.Session.Date, ub.Session.Name, ub.Session.Time)
	}
}

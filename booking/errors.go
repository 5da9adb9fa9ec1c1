package booking

// ValidationError reports user input the ledger refuses to record. These
// errors are recoverable: the message is meant to be shown verbatim and the
// user may correct the input and retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	// ErrEmptyName is returned when a booking is attempted without a name.
	ErrEmptyName = &ValidationError{Reason: "Please enter a name"}

	// ErrDuplicateBooking is returned when the same user books the same
	// session twice.
	ErrDuplicateBooking = &ValidationError{Reason: "You have already booked this class"}
)

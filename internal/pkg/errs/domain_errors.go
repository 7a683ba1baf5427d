package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Reservation workflow
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("court already booked for that window")
	ErrInvalidTransition   = errors.New("invalid reservation state transition")

	// Catalogue
	ErrCourtNotFound    = errors.New("court not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	// Referential integrity
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrEntityInUse       = errors.New("entity is referenced by other records")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidFormat    = errors.New("malformed date or time")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

package errs

import "errors"

// Error classes shared by the decision core and the orchestrator
var (
	// Caller supplied a value outside the accepted domain (maps to 400)
	ErrInvalidArgument = errors.New("invalid argument")
	// Class has no free seat left (maps to 409)
	ErrCapacityExceeded = errors.New("class capacity full")
)

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Member errors
	ErrMemberNotFound = errors.New("member not found")

	// Class errors
	ErrClassNotFound = errors.New("class not found")

	// Reservation errors
	ErrReservationNotFound         = errors.New("reservation not found")
	ErrReservationAlreadyCancelled = errors.New("reservation already cancelled")

	// Idempotency errors
	ErrIdempotencyKeyReused  = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = errors.New("request with this idempotency key is still in progress")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

package library

import "fmt"

// Reason codes carried by ValidationError.
const (
	ReasonRequired   = "Required"
	ReasonTooLarge   = "TooLarge"
	ReasonNotAnImage = "NotAnImage"
)

// ValidationError rejects caller input before any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonRequired:
		return fmt.Sprintf("%s is required", e.Field)
	case ReasonTooLarge:
		return fmt.Sprintf("%s exceeds the size limit", e.Field)
	case ReasonNotAnImage:
		return fmt.Sprintf("%s is not an image file", e.Field)
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

// NotFoundError reports an update against an id the store does not hold.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prompt %s not found", e.ID)
}

// PersistenceError reports a failed durable write. The in-memory mutation
// it follows has already taken effect and is not rolled back.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist prompt collection: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

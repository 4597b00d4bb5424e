package service

import "fmt"

// ConflictError reports a uniqueness violation. Field names which input field
// conflicted ("name" or "description").
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError reports referentially invalid input, such as a category id
// that does not exist.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newNameConflict(name string) *ConflictError {
	return &ConflictError{
		Field:   "name",
		Message: fmt.Sprintf("an item with the name %q already exists", name),
	}
}

func newDescriptionConflict() *ConflictError {
	return &ConflictError{
		Field:   "description",
		Message: "an item with the same description already exists",
	}
}

package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrLibraryItemNotFound is returned when a catalog entry is not found
	ErrLibraryItemNotFound = errors.New("library material not found")

	// ErrTodoNotFound is returned when an order-list entry is not found
	ErrTodoNotFound = errors.New("todo item not found")

	// ErrInvalidStatus is returned when a project status value is not recognized
	ErrInvalidStatus = errors.New("invalid project status")
)

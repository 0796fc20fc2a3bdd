package logger

import "errors"

// Common errors returned by the logger package.
var (
	// ErrInvalidOutputPath is returned when an invalid output path is provided.
	ErrInvalidOutputPath = errors.New("invalid output path")
	// ErrInvalidFields is returned when invalid fields are provided to a logging method.
	ErrInvalidFields = errors.New("invalid fields: must be key-value pairs")
)

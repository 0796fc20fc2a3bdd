package domain

import "errors"

// Validation errors for article records.
var (
	// ErrInvalidTitle is returned when a title is missing or outside the
	// 5..200 rune bound.
	ErrInvalidTitle = errors.New("title must be between 5 and 200 characters")
	// ErrInvalidContent is returned when the body text is missing or not
	// longer than 100 runes.
	ErrInvalidContent = errors.New("content must be longer than 100 characters")
	// ErrMissingURL is returned when the record has no URL.
	ErrMissingURL = errors.New("article URL is required")
)

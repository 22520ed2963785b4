package model

import "errors"

// Run-level errors abort the whole run; file- and line-level errors are absorbed.
var (
	ErrAccessDenied    = errors.New("access denied")
	ErrPathTooLong     = errors.New("path too long")
	ErrSourceNotFound  = errors.New("source directory not found")
	ErrUnknownTimeZone = errors.New("unknown time zone")
	ErrNoEventsFound   = errors.New("no events found")

	ErrMalformedFileName = errors.New("malformed file name")
	ErrMalformedLine     = errors.New("malformed line")
)

package model

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrParse           = errors.New("parse error")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyField      = errors.New("empty field")

	// ErrNoMembers is returned by operations that need a loaded roster.
	ErrNoMembers = errors.New("no members loaded")

	// ErrInvalidResponse is an answer other than y or n. Always recoverable.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrCancelled means input ended before every member was recorded.
	ErrCancelled = errors.New("recording cancelled")
)

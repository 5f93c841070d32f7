package internal

import "errors"

// Caller-visible failures. Phase mismatches and blank submissions are not
// errors: those paths report a boolean no-op and mutate nothing.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

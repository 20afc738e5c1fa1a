package core

import "errors"

// Editing errors. None of them is fatal: the offending operation is rejected
// and prior state is left intact.
var (
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrInvalidResize  = errors.New("dimension out of range")
	ErrEmptyClipboard = errors.New("clipboard is empty")
	ErrEmptySelection = errors.New("no active selection")
)

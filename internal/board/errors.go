package board

import "errors"

// ErrEmptyText is returned by Add when the trimmed input is empty.
var ErrEmptyText = errors.New("task description cannot be empty")

package store

import "errors"

var ErrLocalStateNotFound = errors.New("local state not found")

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrSessionNotFound     = errors.New("session not found")
	ErrFileTooLarge        = errors.New("file too large")
	ErrBackendUnavailable  = errors.New("backend unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// StatusError is a non-2xx backend response. It matches the package sentinels
// through [errors.Is] while keeping the raw status code and the backend's
// detail text available to callers.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, detail)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	case ErrSessionNotFound:
		return e.Status == http.StatusNotFound
	case ErrFileTooLarge:
		return e.Status == http.StatusRequestEntityTooLarge
	case ErrBackendUnavailable:
		return e.Status == http.StatusServiceUnavailable
	case ErrInternalServerError:
		return e.Status == http.StatusInternalServerError
	default:
		return false
	}
}

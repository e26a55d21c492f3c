package service

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyTerminal  = errors.New("station already in terminal state")
	ErrStationNotActive = errors.New("station is not active")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrDataInconsistent marks a pumped bucket referencing a station
	// outside the known domain. It is surfaced, never dropped.
	ErrDataInconsistent = errors.New("inconsistent record data")

	// ErrUpstreamUnavailable wraps record-store failures so callers can
	// tell "legitimately zero" from "unavailable".
	ErrUpstreamUnavailable = errors.New("record store unavailable")
)

func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
}

package entity

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidContact  = errors.New("name and email are required")
	ErrNotFound        = errors.New("not found")
	ErrSlotUnavailable = errors.New("slot is no longer available")
)

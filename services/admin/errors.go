package admin

import "errors"

var (
	ErrInvalidPassword = errors.New("incorrect password")
	ErrAdminDisabled   = errors.New("admin access is not configured")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSlotExists      = errors.New("time slot already blocked")
	ErrInvalidStatus   = errors.New("invalid verification status")
)

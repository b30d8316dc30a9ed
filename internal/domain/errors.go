package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNoValidDays     = errors.New("no valid days")
	ErrDateParse       = errors.New("invalid date")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSecretNotFound  = errors.New("secret not found")
)

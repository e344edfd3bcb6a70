package service

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrProtectedUser      = errors.New("cannot delete default admin user")
	ErrInvalidStatus      = errors.New("unknown reservation status")
	ErrNoPhoneConfigured  = errors.New("no WhatsApp number configured")
)

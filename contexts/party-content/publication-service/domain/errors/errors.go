package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidKind         = errors.New("invalid publication kind")
	ErrPublicationNotFound = errors.New("publication not found")
)

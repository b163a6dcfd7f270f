package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrBranchNotFound = errors.New("branch not found")
)

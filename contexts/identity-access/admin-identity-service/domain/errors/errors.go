package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrUnsupportedRole    = errors.New("unsupported role")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrRoleRecordNotFound = errors.New("role record not found")
	ErrEntryNotFound      = errors.New("directory entry not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginNotSupported  = errors.New("login is handled by the hosted identity provider")
)

// Lifecycle step names reported inside partial failures.
const (
	StepIdentity  = "identity"
	StepRole      = "role-record"
	StepDirectory = "directory-entry"
)

// StepFailure reports a multi-store lifecycle operation that stopped midway.
// Step names the store call that failed and State describes what was left
// behind so an operator can reconcile manually.
type StepFailure struct {
	Op    string
	Step  string
	State string
	Err   error
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf("%s stopped at %s step: %s (%v)", e.Op, e.Step, e.State, e.Err)
}

func (e *StepFailure) Unwrap() error {
	return e.Err
}

// AsStepFailure unwraps err to a StepFailure if one is in the chain.
func AsStepFailure(err error) (*StepFailure, bool) {
	var failure *StepFailure
	ok := errors.As(err, &failure)
	return failure, ok
}

package apperrors

import (
	"errors"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthenticated indicates that no authenticated user identity is present.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates the authenticated user lacks access to the target resource.
var ErrForbidden = errors.New("access forbidden")

// ErrMissingCompanyContext indicates that no acting company could be resolved
// from the request path or the user's selected company.
var ErrMissingCompanyContext = errors.New("company context missing")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("resource conflict")

// ErrPersistence indicates an underlying storage failure. The wrapped cause is
// logged internally; callers only see the generic failure. Never retried here:
// a financial write must not risk silent duplication.
var ErrPersistence = errors.New("persistence failure")

// ErrConstraintViolation indicates the storage layer rejected a write due to a
// constraint (unique, foreign key, check). Distinguished from ErrPersistence so
// callers can tell bad input apart from transient storage trouble.
var ErrConstraintViolation = errors.New("constraint violation")

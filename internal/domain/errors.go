package domain

import "errors"

// Domain errors (no external dependencies). Handlers translate these to
// HTTP statuses; everything unrecognized surfaces as an internal fault.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrForbidden      = errors.New("access denied")
	ErrConflict       = errors.New("conflict with current state")
	ErrAlreadyDeleted = errors.New("resource is already deleted")
	ErrEmailTaken     = errors.New("email is already taken")
	ErrPhoneTaken     = errors.New("phone number is already taken")
	ErrPANTaken       = errors.New("pan number is already taken")
	ErrDuplicate      = errors.New("duplicate resource")
	ErrUploadFailed   = errors.New("asset upload failed")
)

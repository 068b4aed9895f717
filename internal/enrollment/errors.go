package enrollment

import "errors"

var (
	ErrNotFound       = errors.New("enrollment not found")
	ErrForbidden      = errors.New("admin privileges required")
	ErrInvalidStatus  = errors.New("status must be approved or rejected")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrPastMonth      = errors.New("cannot enroll for past months")
)

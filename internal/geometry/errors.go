package geometry

import "errors"

var (
	// ErrInvalidDomainExtents is returned when a domain is constructed with
	// a minimum extent that is not strictly less than its maximum.
	ErrInvalidDomainExtents = errors.New("invalid domain extents: minimum must be less than maximum")
)

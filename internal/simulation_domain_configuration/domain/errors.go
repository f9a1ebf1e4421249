package domain

import "errors"

var (
	ErrDomainNotFound      = errors.New("domain configuration not found")
	ErrUnknownGeometryKind = errors.New("unknown geometry kind")
)

package proxy

import "github.com/ygrebnov/proxy/errors"

// Sentinel errors, re-exported from the errors package so call sites can
// match with errors.Is without a second import.
var (
	ErrNotInterface           = errors.ErrNotInterface
	ErrNotRegistered          = errors.ErrNotRegistered
	ErrNilBacking             = errors.ErrNilBacking
	ErrNotProxy               = errors.ErrNotProxy
	ErrUnknownOperation       = errors.ErrUnknownOperation
	ErrUnknownTargetOperation = errors.ErrUnknownTargetOperation
	ErrSignatureMismatch      = errors.ErrSignatureMismatch
)

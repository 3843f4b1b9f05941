package pure

import "errors"

var (
	ErrNoSuchProperty = errors.New("no such property")
	ErrNoSuchMethod   = errors.New("no such method")
	ErrBadArguments   = errors.New("arguments do not match method signature")
	ErrIncomparable   = errors.New("values cannot be ordered")
	ErrNilTarget      = errors.New("merge target must not be nil")
)

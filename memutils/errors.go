package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// ErrInvalidSize is returned when a human-readable size string cannot be parsed or does not fit in 64 bits
var ErrInvalidSize error = errors.New("invalid size")

// ErrInvalidAlignment is raised when an alignment or granularity of zero is used to round an address
var ErrInvalidAlignment error = errors.New("alignment must be greater than zero")

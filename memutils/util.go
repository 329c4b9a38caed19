package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment. Values that are already aligned
// are returned unchanged. Alignment need not be a power of two, but it must not be zero.
func AlignUp[T constraints.Unsigned](value T, alignment T) T {
	mustAlign(alignment)
	remainder := value % alignment
	if remainder == 0 {
		return value
	}
	return value + (alignment - remainder)
}

// AlignDown rounds value down to the previous multiple of alignment.
func AlignDown[T constraints.Unsigned](value T, alignment T) T {
	mustAlign(alignment)
	return value - value%alignment
}

func mustAlign[T constraints.Unsigned](alignment T) {
	if alignment == 0 {
		panic(cerrors.WithStack(ErrInvalidAlignment))
	}
}

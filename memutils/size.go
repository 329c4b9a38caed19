package memutils

import (
	"fmt"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	cerrors "github.com/cockroachdb/errors"
)

// Size represents a quantity of memory in bytes.
type Size uint64

// Binary size units.
const (
	Byte Size = 1
	KiB       = 1024 * Byte
	MiB       = 1024 * KiB
	GiB       = 1024 * MiB
	TiB       = 1024 * GiB
	PiB       = 1024 * TiB
)

var sizePattern = regexp.MustCompile(`^\s*(\d+)\s*([ptgmkbPTGMKB]?)\s*$`)

var unitMapping = map[string]Size{
	"":  Byte,
	"B": Byte,
	"K": KiB,
	"M": MiB,
	"G": GiB,
	"T": TiB,
	"P": PiB,
}

// formatUnits is ordered largest first
var formatUnits = []struct {
	suffix string
	size   Size
}{
	{"P", PiB},
	{"T", TiB},
	{"G", GiB},
	{"M", MiB},
	{"K", KiB},
}

// ParseSize parses an integer followed by an optional, case-insensitive unit in P, T, G, M, K or B.
// Units are binary powers of 1024 and a missing unit means bytes. Input that does not match, or
// that overflows 64 bits once scaled, returns an error wrapping ErrInvalidSize.
func ParseSize(s string) (Size, error) {
	match := sizePattern.FindStringSubmatch(s)
	if match == nil {
		return 0, cerrors.Wrapf(ErrInvalidSize, "%q", s)
	}

	value, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return 0, cerrors.Wrapf(ErrInvalidSize, "%q: %v", s, err)
	}

	unit := unitMapping[strings.ToUpper(match[2])]
	hi, lo := bits.Mul64(value, uint64(unit))
	if hi != 0 {
		return 0, cerrors.Wrapf(ErrInvalidSize, "%q overflows 64 bits", s)
	}

	return Size(lo), nil
}

// FormatSize renders a byte count with the largest binary unit that does not exceed it,
// rounded to two decimals, e.g. 1.50G. Counts below 1K are printed as plain integers.
func FormatSize(n uint64) string {
	for _, unit := range formatUnits {
		if n >= uint64(unit.size) {
			return fmt.Sprintf("%.2f%s", float64(n)/float64(unit.size), unit.suffix)
		}
	}

	return strconv.FormatUint(n, 10)
}

func (s Size) Bytes() uint64 { return uint64(s) }

func (s Size) String() string { return FormatSize(uint64(s)) }

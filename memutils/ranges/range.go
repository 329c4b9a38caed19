package ranges

import (
	"fmt"

	"github.com/fabricattachedmemory/memreserve/memutils"
)

// Range is a half-open interval [Start, End) of physical addresses. A Range with
// Start >= End holds no memory.
type Range struct {
	// Start is the inclusive start of the range.
	Start uint64

	// End is the exclusive end of the range.
	End uint64
}

// Size returns the number of bytes in the range, or 0 if the range is empty or degenerate.
func (r Range) Size() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range holds no memory. Ranges produced by AlignInward with
// Start > End are reported as empty.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Overlaps returns true if r and other share at least one address. Ranges that only touch
// (r.End == other.Start) do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Intersect returns the overlap between r and other. The boolean is false, and the range
// meaningless, when the two do not overlap.
func (r Range) Intersect(other Range) (Range, bool) {
	if !r.Overlaps(other) {
		return Range{}, false
	}

	return Range{
		Start: max(r.Start, other.Start),
		End:   min(r.End, other.End),
	}, true
}

// AlignInward shrinks the range to the largest sub-range whose bounds are multiples of align:
// Start is rounded up and End is rounded down. The result may be degenerate, in which case
// IsEmpty returns true. AlignInward panics if align is 0.
func (r Range) AlignInward(align uint64) Range {
	return Range{
		Start: memutils.AlignUp(r.Start, align),
		End:   memutils.AlignDown(r.End, align),
	}
}

func (r Range) String() string {
	return fmt.Sprintf("[%#x-%#x)", r.Start, r.End)
}

package ranges

import (
	"fmt"

	"github.com/fabricattachedmemory/memreserve/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Set is an ordered collection of ranges. Sets returned from Merge, Intersect and Subtract
// are canonical: sorted ascending by start, free of empty ranges, and with a gap between
// every pair of consecutive ranges. Callers must treat a Set as immutable; every operation
// in this package returns freshly allocated storage.
type Set []Range

var _ memutils.Validatable = Set{}

// Merge coalesces the provided ranges into a canonical Set. Empty and degenerate ranges are
// dropped, and ranges that touch or overlap are combined. The input slice is not modified.
func Merge(rs ...Range) Set {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.IsEmpty() {
			sorted = append(sorted, r)
		}
	}

	if len(sorted) == 0 {
		return Set{}
	}

	slices.SortFunc(sorted, func(a, b Range) bool {
		return a.Start < b.Start
	})

	merged := make(Set, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			current.End = max(current.End, next.End)
			continue
		}

		merged = append(merged, current)
		current = next
	}

	merged = append(merged, current)
	memutils.DebugValidate(merged)
	return merged
}

// Intersect returns the addresses present in both a and b. Ranges that only touch do not
// contribute to the result.
func Intersect(a, b Set) Set {
	var overlaps []Range
	for _, left := range a {
		for _, right := range b {
			if overlap, ok := left.Intersect(right); ok {
				overlaps = append(overlaps, overlap)
			}
		}
	}

	return Merge(overlaps...)
}

// Subtract returns the addresses in a that are not in b.
func Subtract(a, b Set) Set {
	working := a.Clone()
	for _, cut := range b {
		working = subtractOne(working, cut)
		if len(working) == 0 {
			break
		}
	}

	return Merge(working...)
}

// subtractOne removes a single range from every fragment in the working set, leaving zero,
// one or two survivors per fragment.
func subtractOne(working Set, cut Range) Set {
	next := make(Set, 0, len(working)+1)
	for _, fragment := range working {
		overlap, ok := fragment.Intersect(cut)
		if !ok {
			next = append(next, fragment)
			continue
		}

		if overlap.Start != fragment.Start {
			next = append(next, Range{Start: fragment.Start, End: overlap.Start})
		}
		if overlap.End != fragment.End {
			next = append(next, Range{Start: overlap.End, End: fragment.End})
		}
	}

	return next
}

// Clone returns a copy of the set that shares no storage with s.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	copy(clone, s)
	return clone
}

// Reverse returns a copy of the set ordered from the highest start address to the lowest.
func (s Set) Reverse() Set {
	reversed := make(Set, len(s))
	for i, r := range s {
		reversed[len(s)-1-i] = r
	}
	return reversed
}

// TotalSize returns the sum of the sizes of all ranges in the set.
func (s Set) TotalSize() uint64 {
	var total uint64
	for _, r := range s {
		total += r.Size()
	}
	return total
}

// Statistics summarizes the set's range count and sizes.
func (s Set) Statistics() memutils.RangeStatistics {
	var stats memutils.RangeStatistics
	stats.Clear()
	for _, r := range s {
		stats.AddRange(r.Size())
	}
	return stats
}

// Validate returns an error if the set is not canonical.
func (s Set) Validate() error {
	for index, r := range s {
		if r.IsEmpty() {
			return errors.Errorf("range at index %d (%s) is empty", index, r)
		}

		if index == 0 {
			continue
		}

		prev := s[index-1]
		if r.Start <= prev.End {
			if r.Start < prev.Start {
				return errors.Errorf("range at index %d (%s) starts before the previous range %s", index, r, prev)
			}
			if r.Start == prev.End {
				return errors.Errorf("range at index %d (%s) is adjacent to the previous range %s and should have been merged", index, r, prev)
			}
			return errors.Errorf("range at index %d (%s) overlaps the previous range %s", index, r, prev)
		}
	}

	return nil
}

// WriteJSON populates a json array with one object per range in the set.
func (s Set) WriteJSON(array *jwriter.ArrayState) {
	for _, r := range s {
		obj := array.Object()
		obj.Name("Start").String(fmt.Sprintf("%#x", r.Start))
		obj.Name("End").String(fmt.Sprintf("%#x", r.End))
		obj.Name("Bytes").Float64(float64(r.Size()))
		obj.End()
	}
}

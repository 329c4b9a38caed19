package memutils

import "math"

// RangeStatistics summarizes a collection of address ranges
type RangeStatistics struct {
	RangeCount    int
	TotalBytes    uint64
	MinRangeBytes uint64
	MaxRangeBytes uint64
}

func (s *RangeStatistics) Clear() {
	s.RangeCount = 0
	s.TotalBytes = 0
	s.MinRangeBytes = math.MaxUint64
	s.MaxRangeBytes = 0
}

func (s *RangeStatistics) AddRange(size uint64) {
	s.RangeCount++
	s.TotalBytes += size

	if size < s.MinRangeBytes {
		s.MinRangeBytes = size
	}

	if size > s.MaxRangeBytes {
		s.MaxRangeBytes = size
	}
}

// MinRange returns the size of the smallest range, or 0 if no ranges were added
func (s *RangeStatistics) MinRange() uint64 {
	if s.RangeCount == 0 {
		return 0
	}
	return s.MinRangeBytes
}

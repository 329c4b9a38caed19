// Package report derives the system and reserve views of a memory topology and renders them,
// along with reservation plans, as text or JSON.
package report

import (
	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
	"github.com/fabricattachedmemory/memreserve/topology"
)

// Views holds the range sets derived from a single topology snapshot
type Views struct {
	// Firmware is every firmware-declared System RAM range
	Firmware ranges.Set
	// Online is the memory the operating system has online
	Online ranges.Set
	// System is the firmware RAM that is online
	System ranges.Set
	// Reserve is the firmware RAM that the operating system has not onlined
	Reserve ranges.Set
	// BlockSize is the memory block granularity of the snapshot
	BlockSize uint64
}

// Compute reads the topology once and derives every view from that snapshot.
func Compute(topo topology.Topology) Views {
	firmware := topo.FirmwareRanges()
	online := topo.OnlineRanges()

	return Views{
		Firmware:  firmware,
		Online:    online,
		System:    SystemMap(firmware, online),
		Reserve:   CandidateReserveMap(firmware, online),
		BlockSize: topo.BlockSize(),
	}
}

// SystemMap is the firmware RAM the operating system has online.
func SystemMap(firmware, online ranges.Set) ranges.Set {
	return ranges.Intersect(online, firmware)
}

// CandidateReserveMap is the firmware RAM the operating system has not onlined.
func CandidateReserveMap(firmware, online ranges.Set) ranges.Set {
	return ranges.Subtract(firmware, online)
}

// PostReservationMap is the firmware RAM left to the operating system once reserved is excluded.
func PostReservationMap(firmware, reserved ranges.Set) ranges.Set {
	return ranges.Subtract(firmware, reserved)
}

// Package topology reads the firmware memory map and the operating system's online memory
// blocks from sysfs and exposes them as range sets.
package topology

//go:generate mockgen -destination ./mocks/topology.go -package mock_topology github.com/fabricattachedmemory/memreserve/topology Topology

import "github.com/fabricattachedmemory/memreserve/memutils/ranges"

// FirmwareRAMType is the firmware memory map type of entries that describe usable RAM
const FirmwareRAMType = "System RAM"

// Topology is a snapshot of the machine's memory layout
type Topology interface {
	// FirmwareRanges returns every firmware-declared System RAM range
	FirmwareRanges() ranges.Set
	// OnlineRanges returns the memory the operating system currently has online
	OnlineRanges() ranges.Set
	// BlockSize returns the granularity, in bytes, at which memory is onlined
	BlockSize() uint64
}

// Snapshot is an immutable Topology
type Snapshot struct {
	firmware  ranges.Set
	online    ranges.Set
	blockSize uint64
}

var _ Topology = &Snapshot{}

// NewSnapshot builds a Snapshot from already-collected ranges. Both sets are canonicalized.
func NewSnapshot(firmware, online []ranges.Range, blockSize uint64) *Snapshot {
	return &Snapshot{
		firmware:  ranges.Merge(firmware...),
		online:    ranges.Merge(online...),
		blockSize: blockSize,
	}
}

func (s *Snapshot) FirmwareRanges() ranges.Set { return s.firmware.Clone() }

func (s *Snapshot) OnlineRanges() ranges.Set { return s.online.Clone() }

func (s *Snapshot) BlockSize() uint64 { return s.blockSize }

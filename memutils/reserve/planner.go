package reserve

import (
	"context"
	"math"

	"github.com/fabricattachedmemory/memreserve/memutils"
	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
	"golang.org/x/exp/slog"
)

// Result describes the outcome of a reservation request
type Result struct {
	// Ranges is the canonical set of addresses that were reserved
	Ranges ranges.Set
	// Requested is the requested byte count after rounding up to the block size
	Requested uint64
	// Residual is the number of requested bytes that firmware memory could not supply. It is 0
	// when the request was fully satisfied.
	Residual uint64
}

// Reserved returns the number of bytes that were reserved
func (r Result) Reserved() uint64 {
	return r.Requested - r.Residual
}

// Satisfied returns true if the whole request could be reserved
func (r Result) Satisfied() bool {
	return r.Residual == 0
}

// Planner carves reservations out of firmware memory, preferring the highest addresses
type Planner struct {
	logger    *slog.Logger
	blockSize uint64
}

// New creates a Planner. logger receives debug records describing each planning decision.
func New(logger *slog.Logger, options Options) *Planner {
	return &Planner{
		logger:    logger,
		blockSize: options.blockSize(),
	}
}

// BlockSize returns the alignment the planner applies to reservations
func (p *Planner) BlockSize() uint64 {
	return p.blockSize
}

// Plan reserves size bytes, rounded up to the block size, from the firmware set. Firmware ranges are
// visited from the highest start address down; each is aligned inward to the block size and taken whole
// until the remaining request is smaller than a range, at which point only the top of that range is taken.
//
// Insufficient firmware memory is not an error: the returned Result holds whatever could be reserved
// and reports the shortfall in Residual.
func (p *Planner) Plan(firmware ranges.Set, size uint64) Result {
	requested := memutils.AlignUp(size, p.blockSize)
	if requested < size {
		// Rounding up overflowed; settle for the largest block-aligned request
		requested = memutils.AlignDown(uint64(math.MaxUint64), p.blockSize)
	}
	remaining := requested

	var taken []ranges.Range
	for _, fw := range firmware.Reverse() {
		if remaining == 0 {
			break
		}

		aligned := fw.AlignInward(p.blockSize)
		if aligned.IsEmpty() {
			p.logger.Debug("skipping firmware range smaller than a block",
				slog.String("Range", fw.String()),
				slog.Uint64("BlockSize", p.blockSize))
			continue
		}

		fragment := aligned
		if remaining < aligned.Size() {
			fragment = ranges.Range{Start: aligned.End - remaining, End: aligned.End}
		}

		remaining -= fragment.Size()
		taken = append(taken, fragment)

		p.logger.Debug("reserved fragment",
			slog.String("Range", fragment.String()),
			slog.Uint64("Remaining", remaining))
	}

	result := Result{
		Ranges:    ranges.Merge(taken...),
		Requested: requested,
		Residual:  remaining,
	}
	memutils.DebugValidate(result.Ranges)

	if !result.Satisfied() {
		p.logger.LogAttrs(context.Background(), slog.LevelWarn, "firmware memory cannot satisfy reservation",
			slog.Uint64("Requested", requested),
			slog.Uint64("Residual", remaining))
	}

	return result
}

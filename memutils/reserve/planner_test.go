package reserve_test

import (
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
	"github.com/fabricattachedmemory/memreserve/memutils/reserve"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func r(start, end uint64) ranges.Range {
	return ranges.Range{Start: start, End: end}
}

func newPlanner(blockSize uint64) *reserve.Planner {
	logger := slog.New(slog.NewTextHandler(io.Discard))
	return reserve.New(logger, reserve.Options{BlockSize: blockSize})
}

func TestPlanHighestFirst(t *testing.T) {
	planner := newPlanner(1)
	result := planner.Plan(ranges.Set{r(0, 100), r(1000, 1100)}, 50)

	require.Equal(t, ranges.Set{r(1050, 1100)}, result.Ranges)
	require.Equal(t, uint64(50), result.Requested)
	require.Equal(t, uint64(0), result.Residual)
	require.True(t, result.Satisfied())
}

func TestPlanSpansRanges(t *testing.T) {
	planner := newPlanner(1)
	result := planner.Plan(ranges.Set{r(0, 100), r(1000, 1100)}, 150)

	require.Equal(t, ranges.Set{r(50, 100), r(1000, 1100)}, result.Ranges)
	require.Equal(t, uint64(150), result.Reserved())
}

func TestPlanShortfall(t *testing.T) {
	planner := newPlanner(1)
	result := planner.Plan(ranges.Set{r(0, 100), r(1000, 1100)}, 500)

	require.Equal(t, ranges.Set{r(0, 100), r(1000, 1100)}, result.Ranges)
	require.Equal(t, uint64(300), result.Residual)
	require.Equal(t, uint64(200), result.Reserved())
	require.False(t, result.Satisfied())
}

func TestPlanZero(t *testing.T) {
	planner := newPlanner(0x1000)
	result := planner.Plan(ranges.Set{r(0, 0x10000)}, 0)

	require.Empty(t, result.Ranges)
	require.Equal(t, uint64(0), result.Requested)
	require.True(t, result.Satisfied())
}

func TestPlanEmptyFirmware(t *testing.T) {
	planner := newPlanner(0x1000)
	result := planner.Plan(ranges.Set{}, 0x1800)

	require.Empty(t, result.Ranges)
	require.Equal(t, uint64(0x2000), result.Requested)
	require.Equal(t, uint64(0x2000), result.Residual)
}

func TestPlanRoundsToBlockSize(t *testing.T) {
	planner := newPlanner(0x1000)
	result := planner.Plan(ranges.Set{r(0, 0x10000)}, 0x1001)

	require.Equal(t, uint64(0x2000), result.Requested)
	require.Equal(t, ranges.Set{r(0xe000, 0x10000)}, result.Ranges)
}

func TestPlanAlignsFirmwareInward(t *testing.T) {
	planner := newPlanner(0x1000)
	firmware := ranges.Set{r(0x800, 0x4800), r(0x10100, 0x10f00)}
	result := planner.Plan(firmware, 0x2000)

	// The upper range is smaller than a block once aligned and is skipped.
	require.Equal(t, ranges.Set{r(0x2000, 0x4000)}, result.Ranges)
	require.True(t, result.Satisfied())
}

func TestPlanMergesAdjacentFragments(t *testing.T) {
	planner := newPlanner(0x1000)
	firmware := ranges.Merge(r(0, 0x2000), r(0x2000, 0x4000))
	result := planner.Plan(firmware, 0x4000)

	require.Equal(t, ranges.Set{r(0, 0x4000)}, result.Ranges)
}

func TestPlanDefaultBlockSize(t *testing.T) {
	planner := newPlanner(0)
	require.Equal(t, uint64(1), planner.BlockSize())

	result := planner.Plan(ranges.Set{r(3, 10)}, 5)
	require.Equal(t, ranges.Set{r(5, 10)}, result.Ranges)
}

func TestPlanConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	planner := newPlanner(1)

	for i := 0; i < 200; i++ {
		var raw []ranges.Range
		for j := 0; j < 8; j++ {
			start := uint64(rng.Intn(10000))
			raw = append(raw, r(start, start+uint64(rng.Intn(500))))
		}
		firmware := ranges.Merge(raw...)
		capacity := firmware.TotalSize()
		request := uint64(rng.Intn(6000))

		result := planner.Plan(firmware, request)
		require.NoError(t, result.Ranges.Validate())
		require.Equal(t, min(request, capacity), result.Ranges.TotalSize())
		if request > capacity {
			require.Equal(t, request-capacity, result.Residual)
		} else {
			require.Equal(t, uint64(0), result.Residual)
		}
		require.Equal(t, result.Ranges, ranges.Intersect(result.Ranges, firmware))
	}
}

func TestPlanDoesNotModifyFirmware(t *testing.T) {
	planner := newPlanner(1)
	firmware := ranges.Set{r(0, 100), r(1000, 1100)}
	planner.Plan(firmware, 150)

	require.Equal(t, ranges.Set{r(0, 100), r(1000, 1100)}, firmware)
}

func TestPlanRequestNearAddressSpaceLimit(t *testing.T) {
	planner := newPlanner(0x1000)
	result := planner.Plan(ranges.Set{r(0, 0x10000)}, math.MaxUint64)

	require.Equal(t, uint64(math.MaxUint64-0xfff), result.Requested)
	require.Equal(t, ranges.Set{r(0, 0x10000)}, result.Ranges)
	require.Equal(t, uint64(0x10000), result.Reserved())
	require.Equal(t, result.Requested-0x10000, result.Residual)
	require.False(t, result.Satisfied())
}

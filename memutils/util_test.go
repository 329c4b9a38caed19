package memutils_test

import (
	"testing"

	"github.com/fabricattachedmemory/memreserve/memutils"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint64(0), memutils.AlignUp[uint64](0, 32))
	require.Equal(t, uint64(32), memutils.AlignUp[uint64](1, 32))
	require.Equal(t, uint64(32), memutils.AlignUp[uint64](32, 32))
	require.Equal(t, uint64(64), memutils.AlignUp[uint64](33, 32))
	require.Equal(t, uint64(12), memutils.AlignUp[uint64](10, 6))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, uint64(0), memutils.AlignDown[uint64](31, 32))
	require.Equal(t, uint64(32), memutils.AlignDown[uint64](32, 32))
	require.Equal(t, uint64(64), memutils.AlignDown[uint64](90, 32))
	require.Equal(t, uint64(24), memutils.AlignDown[uint64](25, 6))
}

func TestAlignZeroPanics(t *testing.T) {
	require.Panics(t, func() { memutils.AlignUp[uint64](10, 0) })
	require.Panics(t, func() { memutils.AlignDown[uint64](10, 0) })
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(uint64(0x8000000), "block size"))
	err := memutils.CheckPow2(uint64(0x3000), "block size")
	require.ErrorIs(t, err, memutils.PowerOfTwoError)
	require.ErrorContains(t, err, "block size is 12288")
}

func TestRangeStatistics(t *testing.T) {
	var stats memutils.RangeStatistics
	stats.Clear()
	stats.AddRange(10)
	stats.AddRange(30)

	stats.AddRange(5)

	require.Equal(t, memutils.RangeStatistics{
		RangeCount:    3,
		TotalBytes:    45,
		MinRangeBytes: 5,
		MaxRangeBytes: 30,
	}, stats)
	require.Equal(t, uint64(5), stats.MinRange())
}

func TestRangeStatisticsEmpty(t *testing.T) {
	var stats memutils.RangeStatistics
	stats.Clear()

	require.Equal(t, uint64(0), stats.MinRange())
	require.Equal(t, uint64(0), stats.MaxRangeBytes)
}

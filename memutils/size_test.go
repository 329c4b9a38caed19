package memutils_test

import (
	"testing"

	"github.com/fabricattachedmemory/memreserve/memutils"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	cases := map[string]memutils.Size{
		"0":     0,
		"512":   512,
		"512b":  512,
		"4K":    4 * memutils.KiB,
		"4k":    4 * memutils.KiB,
		"16M":   16 * memutils.MiB,
		"64G":   64 * memutils.GiB,
		"2t":    2 * memutils.TiB,
		"1P":    memutils.PiB,
		" 8G ":  8 * memutils.GiB,
		"3 m":   3 * memutils.MiB,
		"16383": 16383,
	}

	for input, expected := range cases {
		size, err := memutils.ParseSize(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, size, input)
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, input := range []string{"", "G", "-1G", "1.5G", "12X", "0x100", "1GB", "99999999999999999999", "16384P"} {
		_, err := memutils.ParseSize(input)
		require.ErrorIs(t, err, memutils.ErrInvalidSize, input)
	}
}

func TestFormatSize(t *testing.T) {
	require.Equal(t, "0", memutils.FormatSize(0))
	require.Equal(t, "1023", memutils.FormatSize(1023))
	require.Equal(t, "1.00K", memutils.FormatSize(1024))
	require.Equal(t, "1.50M", memutils.FormatSize(uint64(memutils.MiB+memutils.MiB/2)))
	require.Equal(t, "128.00M", memutils.FormatSize(uint64(128*memutils.MiB)))
	require.Equal(t, "1023.00G", memutils.FormatSize(uint64(1023*memutils.GiB)))
	require.Equal(t, "1.00T", memutils.FormatSize(uint64(memutils.TiB)))
	require.Equal(t, "2.00P", memutils.FormatSize(uint64(2*memutils.PiB)))
	require.Equal(t, "1024.00P", memutils.FormatSize(uint64(1024*memutils.PiB)))
}

func TestSizeString(t *testing.T) {
	require.Equal(t, "64.00G", (64 * memutils.GiB).String())
	require.Equal(t, uint64(4096), (4 * memutils.KiB).Bytes())
}

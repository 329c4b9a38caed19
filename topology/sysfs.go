package topology

import (
	"io/fs"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/fabricattachedmemory/memreserve/memutils"
	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
	"golang.org/x/exp/slog"
)

const (
	// DefaultRoot is where sysfs is normally mounted
	DefaultRoot = "/sys"

	firmwareMemmapDir = "firmware/memmap"
	memoryDir         = "devices/system/memory"
	blockSizeFile     = "devices/system/memory/block_size_bytes"
	memoryBlockPrefix = "memory"
	onlineState       = "online"
)

// Load reads a Snapshot from fsys, which must be rooted at the sysfs mount point. Any missing or
// malformed file is an error; no partial snapshot is returned.
func Load(logger *slog.Logger, fsys fs.FS) (*Snapshot, error) {
	blockSize, err := readHex(fsys, blockSizeFile)
	if err != nil {
		return nil, err
	}
	if blockSize == 0 {
		return nil, errors.Wrapf(memutils.ErrInvalidAlignment, "%s is 0", blockSizeFile)
	}
	if err := memutils.CheckPow2(blockSize, "memory block size"); err != nil {
		logger.Warn("memory block size is not a power of two", slog.Uint64("BlockSize", blockSize))
	}

	firmware, err := readFirmware(logger, fsys)
	if err != nil {
		return nil, err
	}

	online, err := readOnline(logger, fsys, blockSize)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded memory topology",
		slog.Int("FirmwareRanges", len(firmware)),
		slog.Int("OnlineRanges", len(online)),
		slog.Uint64("BlockSize", blockSize))

	return &Snapshot{
		firmware:  firmware,
		online:    online,
		blockSize: blockSize,
	}, nil
}

// readFirmware collects System RAM entries from firmware/memmap/<N>/{start,end,type}. The end
// file holds the last address of the entry, so each range ends one byte past it.
func readFirmware(logger *slog.Logger, fsys fs.FS) (ranges.Set, error) {
	entries, err := fs.ReadDir(fsys, firmwareMemmapDir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading firmware memory map")
	}

	var ram []ranges.Range
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := path.Join(firmwareMemmapDir, entry.Name())

		entryType, err := readString(fsys, path.Join(dir, "type"))
		if err != nil {
			return nil, err
		}
		if entryType != FirmwareRAMType {
			logger.Debug("ignoring firmware memory map entry", slog.String("Entry", dir), slog.String("Type", entryType))
			continue
		}

		start, err := readHex(fsys, path.Join(dir, "start"))
		if err != nil {
			return nil, err
		}
		last, err := readHex(fsys, path.Join(dir, "end"))
		if err != nil {
			return nil, err
		}
		if last == math.MaxUint64 || last < start {
			return nil, errors.Newf("%s: end %#x is not a valid last address for start %#x", dir, last, start)
		}

		ram = append(ram, ranges.Range{Start: start, End: last + 1})
	}

	return ranges.Merge(ram...), nil
}

type memoryBlock struct {
	name  string
	state string
}

// readOnline collects every memory<N> block whose state is online. Block N covers
// [N*blockSize, (N+1)*blockSize).
func readOnline(logger *slog.Logger, fsys fs.FS, blockSize uint64) (ranges.Set, error) {
	entries, err := fs.ReadDir(fsys, memoryDir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading memory blocks")
	}

	maxIndex := math.MaxUint64 / blockSize
	blocks := swiss.NewMap[uint64, memoryBlock](uint32(max(len(entries), 1)))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !strings.HasPrefix(name, memoryBlockPrefix) {
			continue
		}

		index, err := strconv.ParseUint(strings.TrimPrefix(name, memoryBlockPrefix), 10, 64)
		if err != nil {
			// Not a memory block, e.g. the memory_tiering directory
			continue
		}

		if index >= maxIndex {
			return nil, errors.Newf("%s: block index %d with block size %#x lies beyond the 64-bit address space", name, index, blockSize)
		}
		if existing, ok := blocks.Get(index); ok {
			return nil, errors.Newf("%s and %s both describe memory block %d", existing.name, name, index)
		}

		state, err := readString(fsys, path.Join(memoryDir, name, "state"))
		if err != nil {
			return nil, err
		}
		blocks.Put(index, memoryBlock{name: name, state: state})
	}

	var online []ranges.Range
	blocks.Iter(func(index uint64, block memoryBlock) bool {
		if block.state != onlineState {
			logger.Debug("memory block is not online", slog.String("Block", block.name), slog.String("State", block.state))
			return false
		}

		online = append(online, ranges.Range{
			Start: index * blockSize,
			End:   (index + 1) * blockSize,
		})
		return false
	})

	return ranges.Merge(online...), nil
}

func readString(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return strings.TrimSpace(string(data)), nil
}

func readHex(fsys fs.FS, name string) (uint64, error) {
	text, err := readString(fsys, name)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(text), "0x"), 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", name)
	}
	return value, nil
}

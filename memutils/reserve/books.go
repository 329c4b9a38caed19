package reserve

import "github.com/fabricattachedmemory/memreserve/memutils/ranges"

// AlignUp rounds addr up to the next multiple of bsize, leaving aligned addresses unchanged.
// bsize must not be 0.
func AlignUp(bsize, addr uint64) uint64 {
	return addr + ((bsize - ((addr + bsize) % bsize)) % bsize)
}

// BookCount returns the first bsize-aligned address in r and the number of whole books of bsize
// bytes that fit between it and the end of r.
func BookCount(bsize uint64, r ranges.Range) (start uint64, count uint64) {
	start = AlignUp(bsize, r.Start)
	if start >= r.End {
		return start, 0
	}
	return start, (r.End - start) / bsize
}

// BookRun describes the books that fit in a single reserved range
type BookRun struct {
	Range ranges.Range
	Start uint64
	Count uint64
}

// Books computes the book runs for every range in set. Ranges that cannot hold a single book are
// left out, and a bsize of 0 disables the computation entirely.
func Books(bsize uint64, set ranges.Set) []BookRun {
	if bsize == 0 {
		return nil
	}

	var runs []BookRun
	for _, r := range set {
		start, count := BookCount(bsize, r)
		if count == 0 {
			continue
		}

		runs = append(runs, BookRun{Range: r, Start: start, Count: count})
	}

	return runs
}

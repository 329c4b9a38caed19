package report

import (
	"fmt"

	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
)

// KernelParameters returns one memmap=SIZE$START boot parameter per range, which tells the kernel
// to leave that range out of the memory it uses.
func KernelParameters(set ranges.Set) []string {
	params := make([]string, 0, len(set))
	for _, r := range set {
		params = append(params, fmt.Sprintf("memmap=%#x$%#x", r.Size(), r.Start))
	}
	return params
}

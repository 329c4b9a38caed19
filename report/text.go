package report

import (
	"fmt"
	"io"

	"github.com/fabricattachedmemory/memreserve/memutils"
	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
	"github.com/fabricattachedmemory/memreserve/memutils/reserve"
)

// errWriter remembers the first write error so printers can check once at the end
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// WriteShow prints the firmware, system and reserve maps. Each range is listed with its last
// address, the way sysfs presents the firmware map, and each map ends with its total size.
func WriteShow(w io.Writer, views Views) error {
	out := &errWriter{w: w}
	writeMap(out, "Firmware", views.Firmware)
	writeMap(out, "System", views.System)
	writeMap(out, "Reserve", views.Reserve)
	return out.err
}

// WriteMap prints a single titled map in the format used by WriteShow.
func WriteMap(w io.Writer, title string, set ranges.Set) error {
	out := &errWriter{w: w}
	writeMap(out, title, set)
	return out.err
}

func writeMap(out *errWriter, title string, set ranges.Set) {
	out.printf("%s:\n", title)
	for _, r := range set {
		out.printf("\t%#x-%#x\n", r.Start, r.End-1)
	}
	out.printf("\tTotal: %s\n", memutils.FormatSize(set.TotalSize()))
}

// WriteReservation prints the kernel command line parameters that exclude the planned ranges,
// the ranges themselves, the amount reserved and, when bsize is non-zero, how many whole books
// fit in each range.
func WriteReservation(w io.Writer, result reserve.Result, bsize uint64) error {
	out := &errWriter{w: w}

	for _, param := range KernelParameters(result.Ranges) {
		out.printf("%s\n", param)
	}
	for _, r := range result.Ranges {
		out.printf("%#x-%#x\n", r.Start, r.End-1)
	}

	out.printf("Memory reserved: %s\n", memutils.FormatSize(result.Reserved()))
	if !result.Satisfied() {
		out.printf("Shortfall: %s\n", memutils.FormatSize(result.Residual))
	}

	for _, run := range reserve.Books(bsize, result.Ranges) {
		out.printf("Books: %d x %s at %#x\n", run.Count, memutils.FormatSize(bsize), run.Start)
	}

	return out.err
}

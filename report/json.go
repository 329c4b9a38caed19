package report

import (
	"fmt"
	"io"

	"github.com/fabricattachedmemory/memreserve/memutils/ranges"
	"github.com/fabricattachedmemory/memreserve/memutils/reserve"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// WriteJSON renders the views and, if result is non-nil, the reservation plan as a single JSON object.
func WriteJSON(w io.Writer, views Views, result *reserve.Result, bsize uint64) error {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	obj.Name("BlockSize").Float64(float64(views.BlockSize))
	writeSet(&obj, "Firmware", views.Firmware)
	writeSet(&obj, "System", views.System)
	writeSet(&obj, "Reserve", views.Reserve)

	if result != nil {
		reservation := obj.Name("Reservation").Object()
		reservation.Name("Requested").Float64(float64(result.Requested))
		reservation.Name("Reserved").Float64(float64(result.Reserved()))
		reservation.Name("Residual").Float64(float64(result.Residual))
		writeSet(&reservation, "Ranges", result.Ranges)
		writeSet(&reservation, "PostReservation", PostReservationMap(views.Firmware, result.Ranges))

		params := reservation.Name("KernelParameters").Array()
		for _, param := range KernelParameters(result.Ranges) {
			params.String(param)
		}
		params.End()

		if bsize > 0 {
			reservation.Name("BookSize").Float64(float64(bsize))
			books := reservation.Name("Books").Array()
			for _, run := range reserve.Books(bsize, result.Ranges) {
				book := books.Object()
				book.Name("Start").String(fmt.Sprintf("%#x", run.Start))
				book.Name("Count").Float64(float64(run.Count))
				book.End()
			}
			books.End()
		}

		reservation.End()
	}

	obj.End()

	if err := writer.Error(); err != nil {
		return err
	}

	_, err := w.Write(append(writer.Bytes(), '\n'))
	return err
}

func writeSet(obj *jwriter.ObjectState, name string, set ranges.Set) {
	stats := set.Statistics()

	inner := obj.Name(name).Object()
	inner.Name("TotalBytes").Float64(float64(stats.TotalBytes))
	inner.Name("RangeCount").Int(stats.RangeCount)
	inner.Name("MinRangeBytes").Float64(float64(stats.MinRange()))
	inner.Name("MaxRangeBytes").Float64(float64(stats.MaxRangeBytes))

	array := inner.Name("Ranges").Array()
	set.WriteJSON(&array)
	array.End()

	inner.End()
}

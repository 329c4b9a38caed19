package reserve

// Options contains optional settings when creating a Planner
type Options struct {
	// BlockSize is the granularity, in bytes, that the operating system uses to online and offline
	// memory. Reservations are rounded up to a multiple of it and only whole, aligned blocks are
	// taken from firmware ranges. A value of 0 disables alignment, which behaves like a BlockSize of 1.
	BlockSize uint64
}

func (o Options) blockSize() uint64 {
	if o.BlockSize == 0 {
		return 1
	}
	return o.BlockSize
}

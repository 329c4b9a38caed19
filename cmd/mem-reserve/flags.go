package main

import "github.com/fabricattachedmemory/memreserve/memutils"

// sizeFlag is a flag value holding a size such as 16G or 512m
type sizeFlag struct {
	size memutils.Size
	set  bool
}

func (f *sizeFlag) Set(value string) error {
	size, err := memutils.ParseSize(value)
	if err != nil {
		return err
	}
	f.size = size
	f.set = true
	return nil
}

func (f *sizeFlag) String() string {
	if !f.set {
		return ""
	}
	return f.size.String()
}

func (f *sizeFlag) Type() string {
	return "SIZE[unit]"
}

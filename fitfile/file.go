// Package fitfile is the byte-view acquisition collaborator spec.md's §1
// calls out as external to the core: it gets a contiguous []byte in front
// of the decoder, by memory-mapping a path or wrapping a slice the caller
// already holds. Nothing here changes decode semantics.
package fitfile

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// File is a memory-mapped FIT file. Its Bytes() is the contiguous byte
// view fit.Decode/fit.NewDecoder expect.
type File struct {
	data    []byte
	mapping mmap.MMap
	f       *os.File
}

// Open memory-maps path read-only and returns a File wrapping it. The
// caller must Close it when done to release the mapping and underlying
// file descriptor.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{data: data, mapping: data, f: f}, nil
}

// OpenBytes wraps an in-memory slice a caller already holds, for callers
// that did not get their bytes from a mapped file (e.g. a decode cache hit
// or a live device stream already drained into memory).
func OpenBytes(data []byte) *File {
	return &File{data: data}
}

// Bytes returns the contiguous byte view backing this file.
func (f *File) Bytes() []byte {
	return f.data
}

// Close unmaps the file, if it was opened from a path, and closes the
// underlying file descriptor.
func (f *File) Close() error {
	if f.mapping != nil {
		_ = f.mapping.Unmap()
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

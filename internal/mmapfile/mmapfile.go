// Package mmapfile provides a fixed-size output file mapped into memory for
// writing. The file is created or truncated to its final length up front, so
// writes into Bytes are plain memory stores and persistence happens once, in
// Close.
package mmapfile

import "errors"

// ErrClosed is returned when a region is closed twice.
var ErrClosed = errors.New("mmapfile: region already closed")

// Region is a writable view of a pre-sized file.
type Region struct {
	path string
	size int
	data []byte
	impl regionImpl
}

// Path returns the file backing the region.
func (r *Region) Path() string { return r.path }

// Len returns the size of the region in bytes.
func (r *Region) Len() int { return r.size }

// Bytes exposes the mapped memory. The slice is invalid after Close.
func (r *Region) Bytes() []byte { return r.data }

// Close flushes the region to disk and releases it.
func (r *Region) Close() error {
	if r.impl == nil {
		return ErrClosed
	}
	err := r.impl.close(r.data)
	r.impl = nil
	r.data = nil
	return err
}

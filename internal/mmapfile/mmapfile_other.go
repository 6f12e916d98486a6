//go:build !unix

package mmapfile

import (
	"fmt"
	"os"
)

type regionImpl interface {
	close(data []byte) error
}

type buffered struct {
	f *os.File
}

// Create opens path and stretches it to size bytes. Platforms without mmap
// get a heap buffer that is written back in one call on Close.
func Create(path string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmapfile: invalid size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, fmt.Errorf("stretch output file to %d bytes: %w", size, err)
	}
	return &Region{path: path, size: size, data: make([]byte, size), impl: &buffered{f: f}}, nil
}

func (b *buffered) close(data []byte) error {
	if _, err := b.f.WriteAt(data, 0); err != nil {
		b.f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := b.f.Sync(); err != nil {
		b.f.Close()
		return fmt.Errorf("sync output file: %w", err)
	}
	return b.f.Close()
}

//go:build unix

package mmapfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type regionImpl interface {
	close(data []byte) error
}

type mapped struct {
	f *os.File
}

// Create opens path for reading and writing, creating it if needed, stretches
// it to exactly size bytes and maps it shared.
func Create(path string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmapfile: invalid size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	if err := unix.Ftruncate(int(f.Fd()), int64(size)); err != nil {
		f.Close()
		return nil, fmt.Errorf("stretch output file to %d bytes: %w", size, err)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map output file: %w", err)
	}
	return &Region{path: path, size: size, data: data, impl: &mapped{f: f}}, nil
}

func (m *mapped) close(data []byte) error {
	var errs []error
	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		errs = append(errs, fmt.Errorf("sync output file: %w", err))
	}
	if err := unix.Munmap(data); err != nil {
		errs = append(errs, fmt.Errorf("unmap output file: %w", err))
	}
	if err := m.f.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close output file: %w", err))
	}
	return errors.Join(errs...)
}

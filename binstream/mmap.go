package binstream

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MappedStream is a BinaryStream whose storage is a memory-mapped file.
// Writes land in the mapping directly; Sync flushes them to disk.
type MappedStream struct {
	*BinaryStream
	mapping mmap.MMap
	loc     string // location of the memory mapped file
}

// NewMappedStream creates a zero-filled file of size bytes at loc, replacing
// any existing file, and maps it read-write.
func NewMappedStream(loc string, size int) (*MappedStream, error) {
	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, err
		}
	}

	f, err := os.Create(loc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = f.Truncate(int64(size)); err != nil {
		return nil, err
	}

	m, err := mmap.MapRegion(f, size, mmap.RDWR, 0, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", loc)
	}

	return &MappedStream{NewSlice(m), m, loc}, nil
}

// OpenMappedStream maps an existing file read-write over its full length.
func OpenMappedStream(loc string) (*MappedStream, error) {
	f, err := os.OpenFile(loc, os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", loc)
	}

	return &MappedStream{NewSlice(m), m, loc}, nil
}

// Allocate is disabled for mapped streams: the mapping has a fixed size.
func (s *MappedStream) Allocate(n int) {}

// Sync flushes the mapped bytes to the backing file.
func (s *MappedStream) Sync() error {
	return s.mapping.Flush()
}

// Unmap deletes the memory mapping, optionally removing the backing file.
// The stream must not be used afterwards.
func (s *MappedStream) Unmap(removefile bool) error {
	if err := s.mapping.Unmap(); err != nil {
		return err
	}

	if removefile {
		return os.Remove(s.loc)
	}

	return nil
}

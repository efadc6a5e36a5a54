// Package blockfs implements an in-process, in-memory file store with a
// POSIX-shaped descriptor API. Files live in a flat namespace and hold their
// bytes in chains of fixed-size blocks; descriptors are independent cursors
// into a file, each with its own position and access mode. Nothing touches
// the host filesystem and everything vanishes at Destroy or process exit.
//
// The store is single-threaded by design: operations run to completion on
// the caller's goroutine and the error code cell holds only the result of
// the most recent call.
package blockfs

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"

	"github.com/Priyanshu23/BlockFSGo/block"
	"github.com/Priyanshu23/BlockFSGo/registry"
)

const (
	// BlockSize is the capacity of one storage block.
	BlockSize = block.Size
	// MaxFileSize bounds the logical length of a single file.
	MaxFileSize = 100 << 20

	initialDescriptorCap = 2
)

// Filesystem is the descriptor API implemented by Store. Int-returning
// operations report failure as -1 with the cause available from Errno until
// the next call.
type Filesystem interface {
	Open(name string, flags Flags) int
	Read(fd int, buf []byte) int
	Write(fd int, buf []byte) int
	Resize(fd int, newSize int) int
	Close(fd int) int
	Delete(name string) int
	Errno() ErrCode
	Destroy()
}

// Compile-time interface satisfaction check.
var _ Filesystem = (*Store)(nil)

type Store struct {
	registry    *registry.Registry
	descriptors []*descriptor
	// freeSlots marks closed descriptor indices; Open reuses the lowest set
	// bit before growing the table.
	freeSlots   *bitset.BitSet
	errno       ErrCode
	maxFileSize int
	logger      *slog.Logger
}

type StoreOption func(s *Store)

// WithMaxFileSize overrides the per-file size limit.
func WithMaxFileSize(n int) StoreOption {
	return func(s *Store) {
		s.maxFileSize = n
	}
}

// WithLogger routes lifecycle events (create, delete, resize, destroy) to l.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

func New(options ...StoreOption) *Store {
	s := &Store{
		registry:    registry.New(),
		descriptors: make([]*descriptor, 0, initialDescriptorCap),
		freeSlots:   bitset.New(initialDescriptorCap),
		maxFileSize: MaxFileSize,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Errno returns the code set by the most recent operation on the store.
func (s *Store) Errno() ErrCode {
	return s.errno
}

// Destroy closes every live descriptor, releases every file, and resets the
// descriptor table. The store is reusable afterwards.
func (s *Store) Destroy() {
	for fd, d := range s.descriptors {
		if d == nil {
			continue
		}
		s.Close(fd)
	}

	for f := range s.registry.Files() {
		s.registry.Detach(f)
		s.registry.ReleaseIfOrphaned(f)
	}

	s.registry.Reset()
	s.descriptors = make([]*descriptor, 0, initialDescriptorCap)
	s.freeSlots = bitset.New(initialDescriptorCap)
	s.errno = NoErr

	s.logger.Debug("store destroyed")
}

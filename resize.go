package blockfs

import (
	"github.com/Priyanshu23/BlockFSGo/block"
	"github.com/Priyanshu23/BlockFSGo/registry"
)

// Resize sets the file's logical length. Shrinking releases blocks from the
// tail; growing raises occupied counts without touching bytes, appending
// blocks once the tail is full. Requires a writable descriptor. Positions
// held by other descriptors are not rewritten; they are clamped lazily on
// their next read or write.
func (s *Store) Resize(fd int, newSize int) int {
	s.errno = NoErr

	d := s.lookup(fd)
	if d == nil {
		return -1
	}
	if !d.flags.canWrite() {
		s.errno = NoPermission
		return -1
	}
	if newSize < 0 || newSize > s.maxFileSize {
		s.errno = NoMem
		return -1
	}

	f := d.file
	switch {
	case newSize < f.Length:
		shrink(f, newSize)
	case newSize > f.Length:
		grow(f, newSize)
	}

	s.logger.Debug("file resized", "name", f.Name, "size", f.Length)
	return 0
}

// shrink walks from the tail, draining occupied counts and releasing every
// block that reaches zero.
func shrink(f *registry.File, newSize int) {
	for f.Length > newSize {
		tail := f.Tail

		take := f.Length - newSize
		if take > tail.Occupied {
			take = tail.Occupied
		}
		tail.Occupied -= take
		f.Length -= take

		if tail.Occupied == 0 {
			prev := tail.Prev
			tail.Release()
			f.Tail = prev
			if prev == nil {
				f.Head = nil
			} else {
				prev.Next = nil
			}
		}
	}
}

// grow extends the logical length. Growth is logical: existing buffer bytes
// are left as they are, so a region shrunk away and regrown reads back its
// old contents.
func grow(f *registry.File, newSize int) {
	if f.Head == nil {
		b := block.New(nil, nil)
		f.Head = b
		f.Tail = b
	}

	for f.Length < newSize {
		tail := f.Tail

		room := block.Size - tail.Occupied
		if room == 0 {
			next := block.New(tail, nil)
			tail.Next = next
			f.Tail = next
			continue
		}

		add := newSize - f.Length
		if add > room {
			add = room
		}
		tail.Occupied += add
		f.Length += add
	}
}

package blockfs

import (
	"github.com/Priyanshu23/BlockFSGo/block"
)

// Write copies buf into the file at the descriptor's position, growing the
// block chain as needed, and returns the number of bytes written or -1.
// The size bound is checked before any byte is copied, so a failed write
// leaves the file untouched; on success the count always equals len(buf).
func (s *Store) Write(fd int, buf []byte) int {
	s.errno = NoErr

	d := s.lookup(fd)
	if d == nil {
		return -1
	}
	if !d.flags.canWrite() {
		s.errno = NoPermission
		return -1
	}

	f := d.file
	d.syncPosition()

	if d.pos+len(buf) > s.maxFileSize {
		s.errno = NoMem
		return -1
	}
	if len(buf) == 0 {
		return 0
	}

	if f.Head == nil {
		b := block.New(nil, nil)
		f.Head = b
		f.Tail = b
		d.cur = b
	}

	bo := d.blockOffset()
	written := 0

	for written < len(buf) {
		if bo == block.Size {
			if d.cur.Next == nil {
				next := block.New(d.cur, nil)
				d.cur.Next = next
				f.Tail = next
			}
			d.cur = d.cur.Next
			bo = 0
		}

		n := copy(d.cur.Memory[bo:], buf[written:])
		written += n
		bo += n
		if bo > d.cur.Occupied {
			d.cur.Occupied = bo
		}

		d.pos += n
		if d.pos > f.Length {
			f.Length = d.pos
		}
	}

	return written
}

// Read copies up to len(buf) bytes from the descriptor's position into buf
// and returns the number read, 0 at end of file, or -1. End of file is not
// an error: the code stays NoErr.
func (s *Store) Read(fd int, buf []byte) int {
	s.errno = NoErr

	d := s.lookup(fd)
	if d == nil {
		return -1
	}
	if !d.flags.canRead() {
		s.errno = NoPermission
		return -1
	}

	f := d.file
	d.syncPosition()

	if f.Head == nil {
		return 0
	}

	remaining := f.Length - d.pos
	if remaining > len(buf) {
		remaining = len(buf)
	}
	if remaining <= 0 {
		return 0
	}

	bo := d.blockOffset()
	read := 0

	for remaining > 0 && d.cur != nil {
		if bo >= d.cur.Occupied {
			if d.cur.Next == nil {
				break
			}
			d.cur = d.cur.Next
			bo = 0
			continue
		}

		n := d.cur.Occupied - bo
		if n > remaining {
			n = remaining
		}
		copy(buf[read:], d.cur.Memory[bo:bo+n])
		read += n
		bo += n
		d.pos += n
		remaining -= n
	}

	return read
}

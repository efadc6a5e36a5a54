package blockfs

import (
	"github.com/Priyanshu23/BlockFSGo/block"
	"github.com/Priyanshu23/BlockFSGo/registry"
)

// descriptor is an open handle on a file: the cursor position, the block
// containing it, and the access mode captured at open time.
type descriptor struct {
	file *registry.File
	// cur is nil for an empty file; otherwise it refers to the block holding
	// byte pos, where a position on an exact block boundary belongs to the
	// preceding block (in-block offset BlockSize, not 0).
	cur   *block.Block
	pos   int
	flags Flags
}

// lookup validates fd and returns its live descriptor, setting NoFile and
// returning nil for an out-of-range index or a closed slot.
func (s *Store) lookup(fd int) *descriptor {
	if fd < 0 || fd >= len(s.descriptors) {
		s.errno = NoFile
		return nil
	}
	d := s.descriptors[fd]
	if d == nil {
		s.errno = NoFile
		return nil
	}
	return d
}

// allocSlot stores d in the table and returns its index. The lowest closed
// slot is reused first; with none free the table grows by doubling.
func (s *Store) allocSlot(d *descriptor) int {
	if idx, ok := s.freeSlots.NextSet(0); ok {
		s.freeSlots.Clear(idx)
		s.descriptors[idx] = d
		return int(idx)
	}

	if len(s.descriptors) == cap(s.descriptors) {
		grown := make([]*descriptor, len(s.descriptors), max(initialDescriptorCap, 2*cap(s.descriptors)))
		copy(grown, s.descriptors)
		s.descriptors = grown
	}
	s.descriptors = append(s.descriptors, d)
	return len(s.descriptors) - 1
}

// syncPosition reconciles the cursor with the file before an access. Another
// descriptor may have shrunk the file since the last call, leaving pos past
// the end and cur on a released block: clamp to the new length and re-anchor
// by walking the chain from the head. Invoked at the top of both Read and
// Write.
func (d *descriptor) syncPosition() {
	f := d.file

	if d.pos > f.Length {
		d.pos = f.Length
		d.cur = nil
	}
	if d.cur != nil && d.cur.Memory == nil {
		// The block under the cursor was released by a shrink and the file
		// regrown past the position since; the clamp above cannot catch
		// this, the released buffer can.
		d.cur = nil
	}
	if d.pos == 0 {
		d.cur = f.Head
		return
	}
	if d.cur != nil {
		return
	}

	b := f.Head
	end := block.Size
	for end < d.pos {
		b = b.Next
		end += block.Size
	}
	d.cur = b
}

// blockOffset maps pos to its in-block offset, treating an exact block
// boundary as offset BlockSize within the preceding block so that writes
// append to the current tail instead of flipping to a not-yet-allocated
// successor.
func (d *descriptor) blockOffset() int {
	bo := d.pos % block.Size
	if bo == 0 && d.pos > 0 {
		bo = block.Size
	}
	return bo
}

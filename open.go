package blockfs

// Open opens the named file and returns a descriptor index, or -1. With
// Create set, a missing file is registered first; without it, a missing file
// is NoFile. The empty name is never valid.
func (s *Store) Open(name string, flags Flags) int {
	s.errno = NoErr

	if name == "" {
		s.errno = NoFile
		return -1
	}

	f := s.registry.Find(name)
	if f == nil {
		if flags&Create == 0 {
			s.errno = NoFile
			return -1
		}
		f = s.registry.Insert(name)
		s.logger.Debug("file created", "name", name)
	}

	d := &descriptor{
		file:  f,
		cur:   f.Head,
		flags: flags,
	}
	f.Refs++

	return s.allocSlot(d)
}

// Close releases the descriptor and frees its slot for reuse. The last close
// on a deleted file tears the file down.
func (s *Store) Close(fd int) int {
	s.errno = NoErr

	d := s.lookup(fd)
	if d == nil {
		return -1
	}

	f := d.file
	f.Refs--
	d.file = nil
	d.cur = nil
	s.descriptors[fd] = nil
	s.freeSlots.Set(uint(fd))

	s.registry.ReleaseIfOrphaned(f)

	return 0
}

// Delete removes the named file from the registry. With no open descriptors
// its storage is freed immediately; otherwise the file stays alive, invisible
// to lookup, until the last descriptor closes. A file created under the same
// name afterwards is a distinct entity.
func (s *Store) Delete(name string) int {
	s.errno = NoErr

	if name == "" {
		s.errno = NoFile
		return -1
	}

	f := s.registry.Find(name)
	if f == nil {
		s.errno = NoFile
		return -1
	}

	s.registry.Detach(f)
	s.registry.ReleaseIfOrphaned(f)
	s.logger.Debug("file deleted", "name", name, "refs", f.Refs)

	return 0
}

package blockfs

// Flags select create and access-mode behavior for Open. Create composes
// with the mode bits; when neither ReadOnly nor WriteOnly is set the
// descriptor is opened read-write.
type Flags int

const (
	// Create makes Open register the file when no file with the given name
	// exists.
	Create Flags = 1 << iota
	// ReadOnly forbids Write and Resize through the descriptor.
	ReadOnly
	// WriteOnly forbids Read through the descriptor.
	WriteOnly
	// ReadWrite is the default mode; the explicit bit exists so callers can
	// spell the intent out.
	ReadWrite
)

func (f Flags) canRead() bool {
	return f&WriteOnly == 0
}

func (f Flags) canWrite() bool {
	return f&ReadOnly == 0
}

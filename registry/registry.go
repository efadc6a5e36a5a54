// Package registry keeps the flat, name-keyed collection of files. Files are
// stored in a doubly-linked list with a bloom filter in front of name lookup;
// a filter miss means the name was never inserted, so the linear scan can be
// skipped entirely. The filter is add-only, which keeps it conservative:
// after a delete it may still answer "maybe", never a wrong "no".
package registry

import (
	"iter"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/Priyanshu23/BlockFSGo/block"
)

const (
	// Sizing for the lookup filter. 100k names at 1% false positives keeps
	// the filter around 120KB.
	expectedFiles     = 100_000
	falsePositiveRate = 0.01
)

// File is one named file. Head and Tail are both nil iff the file is empty;
// the chain's occupied bytes always sum to Length.
type File struct {
	Name   string
	Head   *block.Block
	Tail   *block.Block
	Length int
	// Refs counts the open descriptors on the file. A detached file stays
	// alive until Refs drops to zero.
	Refs int
	// Detached marks a file removed from the registry (deleted while open).
	// It is invisible to Find but still addressable by its descriptors.
	Detached bool

	next *File
	prev *File
}

type Registry struct {
	head   *File
	count  int
	filter *bloom.BloomFilter
}

func New() *Registry {
	return &Registry{
		filter: bloom.NewWithEstimates(expectedFiles, falsePositiveRate),
	}
}

// Find returns the file registered under name, or nil.
func (r *Registry) Find(name string) *File {
	if !r.filter.TestString(name) {
		return nil
	}
	for f := r.head; f != nil; f = f.next {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Insert registers a new empty file under name and returns it. The caller
// checks Find first; Insert does not enforce uniqueness itself.
func (r *Registry) Insert(name string) *File {
	f := &File{Name: name}
	f.next = r.head
	if r.head != nil {
		r.head.prev = f
	}
	r.head = f
	r.count++
	r.filter.AddString(name)
	return f
}

// Detach unlinks the file from the registry without freeing its storage.
// The file keeps serving its open descriptors until the last one closes.
func (r *Registry) Detach(f *File) {
	if f.Detached {
		return
	}
	if f.next != nil {
		f.next.prev = f.prev
	}
	if f.prev != nil {
		f.prev.next = f.next
	} else {
		r.head = f.next
	}
	f.next = nil
	f.prev = nil
	f.Detached = true
	r.count--
}

// ReleaseIfOrphaned frees the file's block chain once the file is detached
// and no descriptor references it. Reports whether storage was released.
func (r *Registry) ReleaseIfOrphaned(f *File) bool {
	if !f.Detached || f.Refs != 0 {
		return false
	}
	for b := f.Head; b != nil; {
		next := b.Next
		b.Release()
		b = next
	}
	f.Head = nil
	f.Tail = nil
	f.Length = 0
	return true
}

// Files iterates the registered files. The next pointer is captured before
// each yield, so detaching the yielded file mid-iteration is safe.
func (r *Registry) Files() iter.Seq[*File] {
	return func(yield func(*File) bool) {
		for f := r.head; f != nil; {
			next := f.next
			if !yield(f) {
				return
			}
			f = next
		}
	}
}

// Len returns the number of registered (non-detached) files.
func (r *Registry) Len() int {
	return r.count
}

// Reset drops every file and clears the lookup filter.
func (r *Registry) Reset() {
	r.head = nil
	r.count = 0
	r.filter.ClearAll()
}

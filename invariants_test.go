package blockfs

import (
	"testing"

	"github.com/Priyanshu23/BlockFSGo/block"
	"github.com/Priyanshu23/BlockFSGo/registry"
)

// checkFileInvariants audits a file's block chain: occupied counts sum to the
// logical length, only the tail may be partially filled, and an empty file
// has no blocks at all.
func checkFileInvariants(t *testing.T, f *registry.File) {
	t.Helper()

	if f.Length > MaxFileSize {
		t.Fatalf("length %d above limit", f.Length)
	}

	if f.Length == 0 {
		if f.Head != nil || f.Tail != nil {
			t.Fatal("empty file holds blocks")
		}
		return
	}
	if f.Head == nil || f.Tail == nil {
		t.Fatal("non-empty file without blocks")
	}

	sum := 0
	var last *block.Block
	for b := f.Head; b != nil; b = b.Next {
		if b.Memory == nil {
			t.Fatal("released block left in chain")
		}
		if b.Next != nil {
			if b.Occupied != block.Size {
				t.Fatalf("non-tail block occupied %d", b.Occupied)
			}
			if b.Next.Prev != b {
				t.Fatal("chain back-link broken")
			}
		}
		sum += b.Occupied
		last = b
	}

	if last != f.Tail {
		t.Fatal("tail pointer does not reach the last block")
	}
	if sum != f.Length {
		t.Fatalf("occupied sum %d, length %d", sum, f.Length)
	}

	want := f.Length % block.Size
	if want == 0 {
		want = block.Size
	}
	if f.Tail.Occupied != want {
		t.Fatalf("tail occupied %d, want %d", f.Tail.Occupied, want)
	}
}

// checkStoreInvariants audits every file reachable from the descriptor table
// and the registry: refcounts match live descriptors and every reachable
// chain passes checkFileInvariants. A released tombstone is reachable from
// neither, so it is not visited here.
func checkStoreInvariants(t *testing.T, s *Store) {
	t.Helper()

	refs := map[*registry.File]int{}
	for _, d := range s.descriptors {
		if d != nil {
			refs[d.file]++
		}
	}

	for f, n := range refs {
		if f.Refs != n {
			t.Fatalf("file %q refs %d, descriptors %d", f.Name, f.Refs, n)
		}
		if f.Detached && f.Refs == 0 {
			t.Fatalf("orphaned tombstone %q not released", f.Name)
		}
		checkFileInvariants(t, f)
	}

	for f := range s.registry.Files() {
		if f.Refs != refs[f] {
			t.Fatalf("file %q refs %d, descriptors %d", f.Name, f.Refs, refs[f])
		}
		checkFileInvariants(t, f)
	}
}

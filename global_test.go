package blockfs

import (
	"bytes"
	"testing"
)

func TestDefaultStoreFacade(t *testing.T) {
	defer Destroy()

	fd := Open("f", Create)
	if fd == -1 {
		t.Fatalf("open failed: %v", Errno())
	}
	if got := Write(fd, []byte("hello")); got != 5 {
		t.Fatalf("write returned %d: %v", got, Errno())
	}

	rfd := Open("f", ReadOnly)
	buf := make([]byte, 5)
	if got := Read(rfd, buf); got != 5 {
		t.Fatalf("read returned %d: %v", got, Errno())
	}
	if !bytes.Equal(buf, []byte("hello")) {
		t.Fatal("facade roundtrip mismatch")
	}

	if Resize(fd, 2) != 0 {
		t.Fatalf("resize failed: %v", Errno())
	}
	if Close(fd) != 0 || Close(rfd) != 0 {
		t.Fatalf("close failed: %v", Errno())
	}
	if Delete("f") != 0 {
		t.Fatalf("delete failed: %v", Errno())
	}
}

func TestDestroyResetsDefaultStore(t *testing.T) {
	Open("f", Create)
	Destroy()

	if Open("f", 0) != -1 {
		t.Fatal("file survived destroy")
	}
	if Errno() != NoFile {
		t.Fatalf("expected NoFile, got %v", Errno())
	}

	// Destroy with no default store is a no-op.
	Destroy()
	Destroy()
}

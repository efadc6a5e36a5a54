package blockfs

// The package-level API mirrors the flat C-style call surface over a single
// default store, created on first use. It shares the store's single-threaded
// contract: the error code is one cell, read it before the next call.

var defaultStore *Store

func defaultFS() *Store {
	if defaultStore == nil {
		defaultStore = New()
	}
	return defaultStore
}

func Open(name string, flags Flags) int {
	return defaultFS().Open(name, flags)
}

func Read(fd int, buf []byte) int {
	return defaultFS().Read(fd, buf)
}

func Write(fd int, buf []byte) int {
	return defaultFS().Write(fd, buf)
}

func Resize(fd int, newSize int) int {
	return defaultFS().Resize(fd, newSize)
}

func Close(fd int) int {
	return defaultFS().Close(fd)
}

func Delete(name string) int {
	return defaultFS().Delete(name)
}

func Errno() ErrCode {
	return defaultFS().Errno()
}

// Destroy tears the default store down; the next call recreates a fresh one.
func Destroy() {
	if defaultStore == nil {
		return
	}
	defaultStore.Destroy()
	defaultStore = nil
}

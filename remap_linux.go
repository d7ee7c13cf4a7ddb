package vector

import "golang.org/x/sys/unix"

// remap grows or shrinks a mapping, letting the kernel move it.
func remap(b []byte, size int) ([]byte, error) {
	return unix.Mremap(b, size, unix.MREMAP_MAYMOVE)
}

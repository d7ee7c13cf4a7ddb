//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package vector

import "golang.org/x/sys/unix"

// remap maps a fresh region, copies b into it and unmaps b.
func remap(b []byte, size int) ([]byte, error) {
	nb, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	if err := unix.Munmap(b); err != nil {
		_ = unix.Munmap(nb)
		return nil, err
	}
	return nb, nil
}

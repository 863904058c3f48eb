//go:build !linux

package fb

import "os"

// Query asks the kernel for the geometry of an open framebuffer device. Framebuffer devices only exist on Linux.
func Query(*os.File) (Geometry, error) {
	return Geometry{}, ErrNotFramebuffer
}

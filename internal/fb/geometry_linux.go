package fb

import (
	"errors"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Query asks the kernel for the geometry of an open framebuffer device.
func Query(f *os.File) (Geometry, error) {
	var v varScreenInfo
	if err := ioctl(f, ioctlGetVScreenInfo, unsafe.Pointer(&v[0])); err != nil {
		return Geometry{}, err
	}
	var fix fixScreenInfo
	if err := ioctl(f, ioctlGetFScreenInfo, unsafe.Pointer(&fix[0])); err != nil {
		return Geometry{}, err
	}
	return parseGeometry(&v, &fix)
}

func ioctl(f *os.File, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(arg))
	if errno == 0 {
		return nil
	}
	if errors.Is(errno, unix.ENOTTY) || errors.Is(errno, unix.EINVAL) {
		return ErrNotFramebuffer
	}
	return os.NewSyscallError("ioctl", errno)
}

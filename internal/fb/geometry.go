package fb

import (
	"encoding/binary"
	"errors"
	"unsafe"
)

// ErrNotFramebuffer is returned by Query for files that don't answer the framebuffer ioctls.
var ErrNotFramebuffer = errors.New("not a framebuffer device")

const (
	ioctlGetVScreenInfo = 0x4600 // FBIOGET_VSCREENINFO
	ioctlGetFScreenInfo = 0x4602 // FBIOGET_FSCREENINFO
)

// The kernel writes all of struct fb_var_screeninfo / fb_fix_screeninfo; these are big enough for either on every
// architecture, and only the fields we need are decoded. Both structs are native endian, which is little endian on
// every board we run on.
type (
	varScreenInfo [160]byte
	fixScreenInfo [128]byte
)

// fixLineLengthOffset is the offset of line_length in fb_fix_screeninfo. It follows id[16], an unsigned long, four
// u32s and three u16s, padded to 4 bytes, so it depends on the word size.
var fixLineLengthOffset = (16 + int(unsafe.Sizeof(uintptr(0))) + 4*4 + 3*2 + 3) &^ 3

func parseGeometry(v *varScreenInfo, f *fixScreenInfo) (Geometry, error) {
	xres := int(binary.LittleEndian.Uint32(v[0:4]))
	yres := int(binary.LittleEndian.Uint32(v[4:8]))
	bpp := int(binary.LittleEndian.Uint32(v[24:28]))
	lineLength := int(binary.LittleEndian.Uint32(f[fixLineLengthOffset:]))

	format, err := formatForDepth(bpp)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{
		Width:      xres,
		Height:     yres,
		LineLength: lineLength,
		Format:     format,
	}, nil
}

// Package fb drives a Linux framebuffer device (/dev/fbN) as a drivers.Displayer.
//
// Pixels are drawn into a back buffer and written to the device in one go by Display. The device geometry (visible
// resolution, bytes per row and pixel format) is queried from the kernel; images smaller than the device are drawn in
// its top-left corner.
package fb

import (
	"encoding/binary"
	"errors"
	"image/color"
	"io"
	"os"
	"strconv"
)

type Format uint8

const (
	// FormatRGB565 is 16 bits per pixel, little endian.
	FormatRGB565 Format = iota
	// FormatXRGB8888 is 32 bits per pixel, stored as B, G, R, X bytes.
	FormatXRGB8888
)

func (f Format) String() string {
	switch f {
	case FormatRGB565:
		return "rgb565"
	case FormatXRGB8888:
		return "xrgb8888"
	default:
		return "INVALID"
	}
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "rgb565":
		return FormatRGB565, nil
	case "xrgb8888":
		return FormatXRGB8888, nil
	default:
		return 0, errors.New("unknown pixel format " + s)
	}
}

// formatForDepth maps a framebuffer's bits per pixel to the pixel format used at that depth.
func formatForDepth(bpp int) (Format, error) {
	switch bpp {
	case 16:
		return FormatRGB565, nil
	case 32:
		return FormatXRGB8888, nil
	default:
		return 0, errors.New("unsupported framebuffer depth " + strconv.Itoa(bpp) + " bpp")
	}
}

func (f Format) bytesPerPixel() int {
	if f == FormatXRGB8888 {
		return 4
	}
	return 2
}

// Geometry describes the memory layout of a framebuffer device.
type Geometry struct {
	// Width and Height are the visible resolution in pixels.
	Width, Height int
	// LineLength is the number of bytes between the start of two rows, which may include padding.
	// Zero means rows are packed.
	LineLength int
	Format     Format
}

type Framebuffer struct {
	dev    io.WriterAt
	closer io.Closer
	w, h   int16
	format Format
	stride int // device bytes per row
	buf    []byte
}

// New creates a w x h framebuffer that writes to a device with the given geometry. Nothing is written until Display
// is called.
func New(dev io.WriterAt, w, h int16, geo Geometry) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("framebuffer size must be positive")
	}
	if geo.Format != FormatRGB565 && geo.Format != FormatXRGB8888 {
		return nil, errors.New("unsupported pixel format")
	}
	if int(w) > geo.Width || int(h) > geo.Height {
		return nil, errors.New("image size " + strconv.Itoa(int(w)) + "x" + strconv.Itoa(int(h)) +
			" is larger than the framebuffer " + strconv.Itoa(geo.Width) + "x" + strconv.Itoa(geo.Height))
	}

	row := int(w) * geo.Format.bytesPerPixel()
	stride := geo.LineLength
	if stride == 0 {
		stride = geo.Width * geo.Format.bytesPerPixel()
	}
	if stride < geo.Width*geo.Format.bytesPerPixel() {
		return nil, errors.New("framebuffer line length " + strconv.Itoa(stride) + " is shorter than a row")
	}

	return &Framebuffer{
		dev:    dev,
		w:      w,
		h:      h,
		format: geo.Format,
		stride: stride,
		buf:    make([]byte, row*int(h)),
	}, nil
}

// Open opens a framebuffer device such as /dev/fb0 and queries its geometry.
//
// If path is not a framebuffer device (a regular file, a pipe), rows are written packed in the given format instead,
// which is handy for capturing output.
func Open(path string, w, h int16, format Format) (*Framebuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	geo, err := Query(f)
	if errors.Is(err, ErrNotFramebuffer) {
		geo = Geometry{Width: int(w), Height: int(h), Format: format}
	} else if err != nil {
		_ = f.Close()
		return nil, err
	}

	fb, err := New(f, w, h, geo)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	fb.closer = f
	return fb, nil
}

func (fb *Framebuffer) Size() (x, y int16) {
	return fb.w, fb.h
}

// Format is the pixel format written to the device.
func (fb *Framebuffer) Format() Format { return fb.format }

// SetPixel sets a pixel in the back buffer. Out of range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	bpp := fb.format.bytesPerPixel()
	off := (int(y)*int(fb.w) + int(x)) * bpp
	switch fb.format {
	case FormatRGB565:
		binary.LittleEndian.PutUint16(fb.buf[off:], uint16(ToRGB565(c)))
	case FormatXRGB8888:
		fb.buf[off+0] = c.B
		fb.buf[off+1] = c.G
		fb.buf[off+2] = c.R
		fb.buf[off+3] = 0xFF
	}
}

// Display writes the back buffer to the device, one row per device line.
func (fb *Framebuffer) Display() error {
	row := int(fb.w) * fb.format.bytesPerPixel()
	if row == fb.stride {
		return writeFull(fb.dev, fb.buf, 0)
	}
	for y := 0; y < int(fb.h); y++ {
		if err := writeFull(fb.dev, fb.buf[y*row:(y+1)*row], int64(y*fb.stride)); err != nil {
			return err
		}
	}
	return nil
}

func writeFull(dev io.WriterAt, p []byte, off int64) error {
	n, err := dev.WriteAt(p, off)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// Close closes the device if it was opened by Open.
func (fb *Framebuffer) Close() error {
	if fb.closer == nil {
		return nil
	}
	return fb.closer.Close()
}

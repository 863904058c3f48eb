package media

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size is the pixel size every loaded image is resampled to.
type Size struct {
	W, H int
}

func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

func (s Size) Rect() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// Codec decodes image files and resamples them to an exact size.
type Codec interface {
	Decode(path string) (image.Image, error)
	Resample(img image.Image, size Size) (image.Image, error)
}

// Gaussian is a Gaussian resampling kernel with a standard deviation of half a pixel. Like every draw.Kernel, its
// support is stretched by the scale factor when shrinking, so downsampling averages over the covered source area.
var Gaussian = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		// sigma = 0.5; the scaler normalizes the weights so the constant factor doesn't matter
		return math.Exp(-2 * t * t)
	},
}

// FileCodec decodes files from the local filesystem in any format registered with the image package (PNG, JPEG,
// GIF, BMP, TIFF and WebP).
type FileCodec struct {
	// Kernel is used for resampling. Nil means Gaussian.
	Kernel *draw.Kernel
}

func NewFileCodec() *FileCodec {
	return &FileCodec{Kernel: Gaussian}
}

func (c *FileCodec) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Resample scales img to exactly size, ignoring aspect ratio. The result is a new *image.RGBA with its origin at 0, 0.
func (c *FileCodec) Resample(img image.Image, size Size) (image.Image, error) {
	if !size.Valid() {
		return nil, ErrInvalidConfig
	}
	if img.Bounds().Empty() {
		return nil, ErrDecode
	}

	k := c.Kernel
	if k == nil {
		k = Gaussian
	}
	dst := image.NewRGBA(size.Rect())
	k.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

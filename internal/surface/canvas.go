package surface

import (
	"image"
	"image/color"
)

// Canvas is an in-memory drivers.Displayer. It is used for headless runs.
type Canvas struct {
	img      *image.RGBA
	displays int
}

func NewCanvas(w, h int16) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, int(w), int(h)))}
}

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	c.displays++
	return nil
}

// Image returns the canvas contents. It is not a copy.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Displays returns how many times Display has been called.
func (c *Canvas) Displays() int { return c.displays }

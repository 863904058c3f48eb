// Package surface shows slideshow images on pixel displays.
package surface

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Panel shows images on a drivers.Displayer, such as a framebuffer or an SPI panel.
type Panel struct {
	disp drivers.Displayer

	// OnError is called when the display fails to update. The image stays current either way.
	OnError func(error)
}

func NewPanel(disp drivers.Displayer) *Panel {
	return &Panel{disp: disp}
}

// Update draws img and pushes it to the display.
func (p *Panel) Update(img image.Image) {
	DrawImage(p.disp, img)
	if err := p.disp.Display(); err != nil && p.OnError != nil {
		p.OnError(err)
	}
}

// DrawImage draws the image on the display with its top-left corner at the display origin.
// Anything that doesn't fit on the display is clipped.
func DrawImage(disp drivers.Displayer, img image.Image) {
	w, h := disp.Size()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		yy := y - b.Min.Y
		if yy >= int(h) {
			break
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			xx := x - b.Min.X
			if xx >= int(w) {
				break
			}
			disp.SetPixel(int16(xx), int16(yy), rgba(img, x, y))
		}
	}
}

func rgba(img image.Image, x, y int) color.RGBA {
	if m, ok := img.(*image.RGBA); ok {
		return m.RGBAAt(x, y)
	}
	// RGBA returns each channel |= itself << 8
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

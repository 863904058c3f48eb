// Package mirror flips a display horizontally, for panels that are viewed through a mirror or from behind.
package mirror

import (
	"image/color"

	"tinygo.org/x/drivers"
)

type Mirror struct {
	d    drivers.Displayer
	w, h int16
}

func New(d drivers.Displayer) *Mirror {
	w, h := d.Size()
	return &Mirror{
		d: d,
		w: w,
		h: h,
	}
}

func (m *Mirror) Size() (x, y int16) {
	return m.w, m.h
}

func (m *Mirror) SetPixel(x, y int16, c color.RGBA) {
	m.d.SetPixel(m.w-x-1, y, c)
}

func (m *Mirror) Display() error {
	return m.d.Display()
}

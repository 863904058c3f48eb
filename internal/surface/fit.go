package surface

import "math"

// AspectFit returns the scale and offsets that fit a frame into the view with letterboxing.
func AspectFit(viewW, viewH, frameW, frameH float64) (scale, offX, offY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offX = (viewW - frameW*scale) / 2
	offY = (viewH - frameH*scale) / 2
	return
}

// Package window shows the slideshow in a desktop window, for development without panel hardware.
package window

import (
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajanata/slideshow/internal/surface"
)

// Window is a slideshow surface rendered with Ebitengine. Update may be called from any goroutine; Run must be
// called from the main goroutine.
type Window struct {
	mu     sync.Mutex
	frame  *image.RGBA
	dirty  bool
	closed bool

	title string
	w, h  int
}

func New(title string, w, h int) *Window {
	return &Window{
		title: title,
		w:     w,
		h:     h,
	}
}

// Update makes img the current frame. It is drawn on the next window refresh.
func (win *Window) Update(img image.Image) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) || rgba.Stride != 4*rgba.Bounds().Dx() {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	win.mu.Lock()
	defer win.mu.Unlock()
	win.frame = rgba
	win.dirty = true
}

// Close makes Run return after the current window refresh.
func (win *Window) Close() {
	win.mu.Lock()
	defer win.mu.Unlock()
	win.closed = true
}

// Run opens the window and blocks until it is closed by the user or by Close.
func (win *Window) Run() error {
	ebiten.SetWindowSize(win.w, win.h)
	ebiten.SetWindowTitle(win.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{win: win})
}

// game implements ebiten.Game for a Window.
type game struct {
	win *Window
	img *ebiten.Image
}

func (g *game) Update() error {
	g.win.mu.Lock()
	defer g.win.mu.Unlock()
	if g.win.closed {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.win.mu.Lock()
	frame, dirty := g.win.frame, g.win.dirty
	g.win.dirty = false
	g.win.mu.Unlock()

	if frame == nil {
		return
	}

	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	if g.img == nil || g.img.Bounds().Dx() != fw || g.img.Bounds().Dy() != fh {
		g.img = ebiten.NewImage(fw, fh)
		dirty = true
	}
	if dirty {
		g.img.WritePixels(frame.Pix)
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, offX, offY := surface.AspectFit(float64(sw), float64(sh), float64(fw), float64(fh))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offX, offY)
	screen.DrawImage(g.img, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

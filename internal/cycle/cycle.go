package cycle

import (
	"image"

	"github.com/ajanata/slideshow/internal/media"
)

// Surface is where the current image is shown. Update replaces whatever is currently displayed and should not block.
type Surface interface {
	Update(img image.Image)
}

// Manager walks through a fixed sequence of images, one per tick, starting over after the last one.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	frames []image.Image
	pos    int
}

// New creates a Manager that will show frames in order, starting with the first one.
func New(frames []image.Image) (*Manager, error) {
	if len(frames) == 0 {
		return nil, media.ErrEmptySequence
	}

	f := make([]image.Image, len(frames))
	copy(f, frames)
	return &Manager{frames: f}, nil
}

// Tick shows the current image on the surface and advances to the next one.
// It only fails on a nil Manager or one without any images.
func (m *Manager) Tick(s Surface) error {
	if m == nil || len(m.frames) == 0 {
		return media.ErrEmptySequence
	}

	s.Update(m.frames[m.pos])
	m.pos++
	if m.pos >= len(m.frames) {
		m.pos = 0
	}
	return nil
}

// Position is the index of the image the next tick will show.
func (m *Manager) Position() int { return m.pos }

func (m *Manager) Len() int { return len(m.frames) }

package slideshow

import (
	"github.com/ajanata/slideshow/internal/cycle"
	"github.com/ajanata/slideshow/internal/media"
)

// Surface is where the current image is shown.
type Surface = cycle.Surface

// Ticker shows one image per call to Tick. *cycle.Manager and *Slideshow are Tickers.
type Ticker interface {
	Tick(Surface) error
}

var (
	ErrNotFound      = media.ErrNotFound
	ErrDecode        = media.ErrDecode
	ErrEmptySequence = media.ErrEmptySequence
	ErrInvalidConfig = media.ErrInvalidConfig
)

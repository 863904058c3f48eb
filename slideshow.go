// Package slideshow shows a fixed sequence of images on a display, one at a time, at a fixed frame rate, starting
// over after the last image until it is stopped.
package slideshow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajanata/slideshow/internal/cycle"
	"github.com/ajanata/slideshow/internal/media"
)

// FrameInterval is how long each image is shown at the given frame rate, truncated to whole milliseconds.
func FrameInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("must run at least one frame per second: %w", ErrInvalidConfig)
	}
	return time.Duration(1000/fps) * time.Millisecond, nil
}

// Run ticks t once per frame interval until ctx is done, which is returned as ctx.Err().
//
// The wait between ticks is always the full frame interval; a slow tick delays every later frame. An invalid fps is
// rejected before the first tick.
func Run(ctx context.Context, t Ticker, s Surface, fps int) error {
	interval, err := FrameInterval(fps)
	if err != nil {
		return err
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()
	for {
		if err := t.Tick(s); err != nil {
			return err
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

type Slideshow struct {
	fps     int
	surface Surface
	log     Logger
	manager *cycle.Manager

	tick      uint32
	lastSec   time.Time
	lastTicks uint32
	lastFPS   uint32
}

// New creates a slideshow that runs at fps frames per second on surface. A nil log logs to stderr.
func New(fps int, surface Surface, log Logger) (*Slideshow, error) {
	if _, err := FrameInterval(fps); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("must provide surface: %w", ErrInvalidConfig)
	}
	if log == nil {
		log = stderrLogger{}
	}

	return &Slideshow{
		fps:     fps,
		surface: surface,
		log:     log,
	}, nil
}

// Load loads and resizes the images at paths, in order. It must be called exactly once before Run.
func (s *Slideshow) Load(codec media.Codec, paths []string, size media.Size) error {
	if s.manager != nil {
		return errors.New("already loaded")
	}

	s.log.Infof("Load and process %d image(s)...", len(paths))
	start := time.Now()
	imgs, err := media.Load(codec, paths, size)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.manager, err = cycle.New(imgs)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.lastSec = time.Now()
	s.log.Info("All images have been loaded successfully")
	s.log.Debugf("loaded %d %dx%d images in %s", len(imgs), size.W, size.H, time.Since(start).Round(time.Millisecond))
	return nil
}

// Run shows the images until ctx is done. It returns ctx.Err() when stopped.
func (s *Slideshow) Run(ctx context.Context) error {
	if s.manager == nil {
		return errors.New("not loaded")
	}
	interval, _ := FrameInterval(s.fps)
	s.log.Infof("showing %d image(s) every %s", s.manager.Len(), interval)
	return Run(ctx, s, s.surface, s.fps)
}

// RunTick shows the next image on the surface.
func (s *Slideshow) RunTick() error {
	return s.Tick(s.surface)
}

// Tick shows the next image on surf. It implements Ticker so the slideshow can count frames as they are shown.
func (s *Slideshow) Tick(surf Surface) error {
	if s.manager == nil {
		return errors.New("not loaded")
	}
	if err := s.manager.Tick(surf); err != nil {
		return err
	}
	s.tick++

	if time.Since(s.lastSec) >= time.Second {
		s.lastFPS = s.tick - s.lastTicks
		s.lastSec = time.Now()
		s.lastTicks = s.tick
		s.log.Debugf("%d Hz, next image %d/%d", s.lastFPS, s.manager.Position()+1, s.manager.Len())
	}
	return nil
}

// Ticks is how many images have been shown.
func (s *Slideshow) Ticks() uint32 { return s.tick }

// FPS is the frame rate measured over the last full second.
func (s *Slideshow) FPS() uint32 { return s.lastFPS }

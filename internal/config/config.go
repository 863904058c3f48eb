package config

import (
	"flag"
	"fmt"
	"math"

	"golang.org/x/image/draw"

	"github.com/ajanata/slideshow/internal/fb"
	"github.com/ajanata/slideshow/internal/media"
)

// SurfaceKind selects where the slideshow is shown.
type SurfaceKind uint8

const (
	// SurfaceFramebuffer draws on a Linux framebuffer device.
	SurfaceFramebuffer SurfaceKind = iota
	// SurfaceWindow opens a desktop window.
	SurfaceWindow
	// SurfaceHeadless draws into memory only. Useful for checking that images load.
	SurfaceHeadless
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceFramebuffer:
		return "fb"
	case SurfaceWindow:
		return "window"
	case SurfaceHeadless:
		return "headless"
	default:
		return "INVALID"
	}
}

func parseSurface(s string) (SurfaceKind, error) {
	for _, k := range []SurfaceKind{SurfaceFramebuffer, SurfaceWindow, SurfaceHeadless} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown surface %q: %w", s, media.ErrInvalidConfig)
}

// Config holds all runtime configuration.
type Config struct {
	Paths   []string
	Size    media.Size
	FPS     int
	Surface SurfaceKind
	Device  string
	Format  fb.Format
	Mirror  bool
	Kernel  *draw.Kernel

	// StatusDevice is the framebuffer device for boot messages; empty disables the status display.
	StatusDevice string
	StatusWidth  int
	StatusHeight int
	StatusFormat fb.Format
}

// Parse parses command line arguments, not including the program name.
func Parse(name string, args []string) (*Config, error) {
	cfg := &Config{}
	var surface, format, statusFormat, kernel string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] image...\n", name)
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.Size.W, "width", 64, "Display width in pixels")
	fs.IntVar(&cfg.Size.H, "height", 32, "Display height in pixels")
	fs.IntVar(&cfg.FPS, "fps", 1, "Images shown per second")
	fs.StringVar(&surface, "surface", "fb", "Where to show images: fb, window or headless")
	fs.StringVar(&cfg.Device, "fb", "/dev/fb0", "Framebuffer device")
	fs.StringVar(&format, "format", "rgb565", "Pixel format (rgb565 or xrgb8888) if -fb is not a framebuffer device")
	fs.BoolVar(&cfg.Mirror, "mirror", false, "Flip the image horizontally")
	fs.StringVar(&kernel, "kernel", "gaussian", "Resampling kernel: gaussian or catmullrom")
	fs.StringVar(&cfg.StatusDevice, "status", "", "Framebuffer device for status messages (optional)")
	fs.IntVar(&cfg.StatusWidth, "status-width", 128, "Status display width in pixels")
	fs.IntVar(&cfg.StatusHeight, "status-height", 64, "Status display height in pixels")
	fs.StringVar(&statusFormat, "status-format", "rgb565", "Pixel format (rgb565 or xrgb8888) if -status is not a framebuffer device")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Paths = fs.Args()

	var err error
	if cfg.Surface, err = parseSurface(surface); err != nil {
		return nil, err
	}
	if cfg.Format, err = fb.ParseFormat(format); err != nil {
		return nil, fmt.Errorf("%w: %w", err, media.ErrInvalidConfig)
	}
	if cfg.StatusFormat, err = fb.ParseFormat(statusFormat); err != nil {
		return nil, fmt.Errorf("status: %w: %w", err, media.ErrInvalidConfig)
	}
	switch kernel {
	case "gaussian":
		cfg.Kernel = media.Gaussian
	case "catmullrom":
		cfg.Kernel = draw.CatmullRom
	default:
		return nil, fmt.Errorf("unknown kernel %q: %w", kernel, media.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that don't depend on the surface being available.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("no images given: %w", media.ErrEmptySequence)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive: %w", media.ErrInvalidConfig)
	}
	if !c.Size.Valid() || c.Size.W > math.MaxInt16 || c.Size.H > math.MaxInt16 {
		return fmt.Errorf("size %dx%d out of range: %w", c.Size.W, c.Size.H, media.ErrInvalidConfig)
	}
	if c.StatusDevice != "" && (c.StatusWidth <= 0 || c.StatusHeight <= 0 ||
		c.StatusWidth > math.MaxInt16 || c.StatusHeight > math.MaxInt16) {
		return fmt.Errorf("status size %dx%d out of range: %w", c.StatusWidth, c.StatusHeight, media.ErrInvalidConfig)
	}
	return nil
}

package slideshow

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ajanata/slideshow/internal/cycle"
	"github.com/ajanata/slideshow/internal/media"
)

// nameCodec decodes every file to a 1x1 image whose red channel is the first byte of the file name, so shown images
// can be traced back to their source.
type nameCodec struct{}

func (nameCodec) Decode(path string) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: filepath.Base(path)[0], A: 0xFF})
	return img, nil
}

func (nameCodec) Resample(img image.Image, size media.Size) (image.Image, error) {
	dst := image.NewRGBA(size.Rect())
	c := img.(*image.RGBA).RGBAAt(0, 0)
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+3] = c.R, c.A
	}
	return dst, nil
}

// recorder is a surface that remembers what it was shown and when.
type recorder struct {
	shown []image.Image
	at    []time.Time
	// after is called after every update with the number of updates so far.
	after func(n int)
}

func (r *recorder) Update(img image.Image) {
	r.shown = append(r.shown, img)
	r.at = append(r.at, time.Now())
	if r.after != nil {
		r.after(len(r.shown))
	}
}

func (r *recorder) names() string {
	var sb strings.Builder
	for _, img := range r.shown {
		sb.WriteByte(img.(*image.RGBA).Pix[0])
	}
	return sb.String()
}

type memLogger struct {
	lines []string
}

func (l *memLogger) Debug(msg string) { l.lines = append(l.lines, "D "+msg) }
func (l *memLogger) Debugf(format string, v ...any) { l.Debug(fmt.Sprintf(format, v...)) }
func (l *memLogger) Info(msg string) { l.lines = append(l.lines, "I "+msg) }
func (l *memLogger) Infof(format string, v ...any) { l.Info(fmt.Sprintf(format, v...)) }

func touch(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func manager(t *testing.T, n int) *cycle.Manager {
	t.Helper()
	imgs := make([]image.Image, n)
	for i := range imgs {
		imgs[i] = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	m, err := cycle.New(imgs)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{1, time.Second},
		{3, 333 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{60, 16 * time.Millisecond},
		{1000, time.Millisecond},
		{2000, 0},
	}
	for _, tt := range tests {
		got, err := FrameInterval(tt.fps)
		if err != nil {
			t.Errorf("FrameInterval(%d): %v", tt.fps, err)
		}
		if got != tt.want {
			t.Errorf("FrameInterval(%d) = %s, want %s", tt.fps, got, tt.want)
		}
	}

	for _, fps := range []int{0, -1} {
		if _, err := FrameInterval(fps); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("FrameInterval(%d) err = %v, want ErrInvalidConfig", fps, err)
		}
	}
}

func TestRunInvalidFPS(t *testing.T) {
	var r recorder
	err := Run(context.Background(), manager(t, 2), &r, 0)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if len(r.shown) != 0 {
		t.Errorf("%d ticks happened before the error", len(r.shown))
	}
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := recorder{after: func(n int) {
		if n == 5 {
			cancel()
		}
	}}
	err := Run(ctx, manager(t, 2), &r, 1000)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(r.shown) != 5 {
		t.Errorf("%d ticks, want 5", len(r.shown))
	}
}

func TestRunEmptyManager(t *testing.T) {
	var r recorder
	err := Run(context.Background(), &cycle.Manager{}, &r, 10)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("err = %v, want ErrEmptySequence", err)
	}
}

func TestRunNilManager(t *testing.T) {
	var r recorder
	err := Run(context.Background(), (*cycle.Manager)(nil), &r, 10)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("err = %v, want ErrEmptySequence", err)
	}
	if len(r.shown) != 0 {
		t.Errorf("%d images shown", len(r.shown))
	}
}

func TestRunInterval(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	const samples = 6
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := recorder{after: func(n int) {
		if n == samples+1 {
			cancel()
		}
	}}
	_ = Run(ctx, manager(t, 2), &r, 10)

	var total time.Duration
	for i := 1; i < len(r.at); i++ {
		d := r.at[i].Sub(r.at[i-1])
		if d < 100*time.Millisecond {
			t.Errorf("interval %d was %s, shorter than the frame interval", i, d)
		}
		total += d
	}
	avg := total / samples
	if avg < 80*time.Millisecond || avg > 120*time.Millisecond {
		t.Errorf("average interval %s, want 100ms ± 20ms", avg)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(0, &recorder{}, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("fps 0: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(10, nil, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil surface: err = %v, want ErrInvalidConfig", err)
	}
	s, err := New(10, &recorder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.log == nil {
		t.Error("no default logger")
	}
}

func TestSlideshowScenario(t *testing.T) {
	var r recorder
	var log memLogger
	s, err := New(10, &r, &log)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Load(nameCodec{}, touch(t, "a.png", "b.png"), media.Size{W: 100, H: 100}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.RunTick(); err != nil {
			t.Fatal(err)
		}
	}

	if got := r.names(); got != "aba" {
		t.Errorf("shown %q, want %q", got, "aba")
	}
	for _, img := range r.shown {
		if img.Bounds() != image.Rect(0, 0, 100, 100) {
			t.Errorf("shown image is %v, want 100x100", img.Bounds())
		}
	}
	if s.Ticks() != 3 {
		t.Errorf("Ticks = %d, want 3", s.Ticks())
	}

	want := []string{"I Load and process 2 image(s)...", "I All images have been loaded successfully"}
	for i, w := range want {
		if i >= len(log.lines) || log.lines[i] != w {
			t.Fatalf("log = %q, want it to start with %q", log.lines, want)
		}
	}

	if err := s.Load(nameCodec{}, touch(t, "c.png"), media.Size{W: 1, H: 1}); err == nil {
		t.Error("loading twice succeeded")
	}
}

func TestSlideshowLoadFailure(t *testing.T) {
	var r recorder
	s, err := New(10, &r, &memLogger{})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Load(nameCodec{}, nil, media.Size{W: 100, H: 100}); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("err = %v, want ErrEmptySequence", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.png")
	if err := s.Load(nameCodec{}, []string{missing}, media.Size{W: 100, H: 100}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	if err := s.Run(context.Background()); err == nil {
		t.Error("Run succeeded without images")
	}
	if err := s.RunTick(); err == nil {
		t.Error("RunTick succeeded without images")
	}
	if len(r.shown) != 0 {
		t.Errorf("%d images shown", len(r.shown))
	}
}

func TestSlideshowRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := recorder{after: func(n int) {
		if n == 4 {
			cancel()
		}
	}}
	s, err := New(500, &r, &memLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Load(nameCodec{}, touch(t, "x.png", "y.png", "z.png"), media.Size{W: 2, H: 2}); err != nil {
		t.Fatal(err)
	}

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := r.names(); got != "xyzx" {
		t.Errorf("shown %q, want %q", got, "xyzx")
	}
	if s.Ticks() != 4 {
		t.Errorf("Ticks = %d, want 4", s.Ticks())
	}
}

func TestTee(t *testing.T) {
	var a, b memLogger
	l := Tee(&a, &b)
	l.Infof("hello %d", 1)
	l.Debug("dbg")
	for _, m := range []*memLogger{&a, &b} {
		if len(m.lines) != 2 || m.lines[0] != "I hello 1" || m.lines[1] != "D dbg" {
			t.Errorf("lines = %q", m.lines)
		}
	}
}

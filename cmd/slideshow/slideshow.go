package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajanata/slideshow"
	"github.com/ajanata/slideshow/internal/config"
	"github.com/ajanata/slideshow/internal/fb"
	"github.com/ajanata/slideshow/internal/media"
	"github.com/ajanata/slideshow/internal/mirror"
	"github.com/ajanata/slideshow/internal/surface"
	"github.com/ajanata/slideshow/internal/window"
	"tinygo.org/x/drivers"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		println(err.Error())
		return 1
	}

	log := slideshow.StderrLogger()
	if cfg.StatusDevice != "" {
		status, err := fb.Open(cfg.StatusDevice, int16(cfg.StatusWidth), int16(cfg.StatusHeight), cfg.StatusFormat)
		if err != nil {
			// the status display is nice to have, so carry on without it
			log.Info("status display: " + err.Error())
		} else {
			defer status.Close()
			sl, err := slideshow.NewStatusLogger(status)
			if err != nil {
				log.Info(err.Error())
			} else {
				log = slideshow.Tee(log, sl)
			}
		}
	}

	var surf slideshow.Surface
	var win *window.Window
	switch cfg.Surface {
	case config.SurfaceWindow:
		win = window.New("slideshow", cfg.Size.W, cfg.Size.H)
		surf = win
	case config.SurfaceFramebuffer, config.SurfaceHeadless:
		var disp drivers.Displayer
		if cfg.Surface == config.SurfaceHeadless {
			disp = surface.NewCanvas(int16(cfg.Size.W), int16(cfg.Size.H))
		} else {
			dev, err := fb.Open(cfg.Device, int16(cfg.Size.W), int16(cfg.Size.H), cfg.Format)
			if err != nil {
				log.Info("open framebuffer: " + err.Error())
				return 1
			}
			defer dev.Close()
			disp = dev
		}
		if cfg.Mirror {
			disp = mirror.New(disp)
		}
		p := surface.NewPanel(disp)
		p.OnError = func(err error) {
			log.Debug("display: " + err.Error())
		}
		surf = p
	}

	show, err := slideshow.New(cfg.FPS, surf, log)
	if err != nil {
		log.Info(err.Error())
		return 1
	}
	if err := show.Load(&media.FileCodec{Kernel: cfg.Kernel}, cfg.Paths, cfg.Size); err != nil {
		log.Info(err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if win == nil {
		err = show.Run(ctx)
	} else {
		// Ebitengine must own the main goroutine
		done := make(chan error, 1)
		go func() {
			done <- show.Run(ctx)
			win.Close()
		}()
		if werr := win.Run(); werr != nil {
			log.Info("window: " + werr.Error())
		}
		// the window may have been closed by the user
		stop()
		err = <-done
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Info(err.Error())
		return 1
	}
	log.Info("stopped")
	return 0
}

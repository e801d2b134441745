// SPDX-License-Identifier: Unlicense OR MIT

// Command fbodemo renders one pass into an off-screen target and writes
// every color attachment to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/glscope/fbo"
	"github.com/glscope/fbo/headless"
)

var (
	configPath = flag.String("config", "", "TOML file describing the window, target and pass")
	outPrefix  = flag.String("o", "fbo", "output file prefix; attachment i is written to <prefix>-<i>.png")
	scale      = flag.Float64("scale", 1, "scale factor applied to the written images")
	verbose    = flag.Bool("v", false, "log render passes")
)

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fbo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "fbodemo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() (err error) {
	if *scale <= 0 {
		return fmt.Errorf("invalid -scale %g", *scale)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	w, err := headless.NewWindow(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := w.Release(); err == nil {
			err = rerr
		}
	}()

	var imgs []*image.RGBA
	err = w.Do(func(ctx *fbo.Context) error {
		imgs, err = render(ctx, cfg)
		return err
	})
	if err != nil {
		return err
	}
	return writeImages(imgs, *outPrefix, *scale)
}

// render runs a single pass into a new target and reads back every
// attachment.
func render(ctx *fbo.Context, cfg config) (imgs []*image.RGBA, err error) {
	rt, err := ctx.NewRenderTarget(cfg.targetConfig())
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := rt.Release(); err == nil {
			err = rerr
		}
	}()
	p, err := ctx.Begin(rt)
	if err != nil {
		return nil, err
	}
	imgs, err = drawPass(p, cfg)
	if eerr := p.End(); err == nil {
		err = eerr
	}
	if err != nil {
		return nil, err
	}
	return imgs, nil
}

func drawPass(p *fbo.Pass, cfg config) ([]*image.RGBA, error) {
	switch cfg.Pass.Blending {
	case "additive":
		p.AdditiveBlending()
	case "alpha":
		p.AlphaBlending()
	default:
		p.SetBlend(false)
	}
	p.BackFaceCulling(cfg.Pass.Cull)
	c := cfg.Pass.Clear
	p.SetClearColor(c[0], c[1], c[2], c[3])
	p.SetClearDepth(1)
	p.Clear()

	imgs := make([]*image.RGBA, len(p.Target().Surfaces()))
	for i := range imgs {
		img := image.NewRGBA(image.Rectangle{Max: p.Extent()})
		if err := p.ReadPixels(i, img); err != nil {
			return nil, err
		}
		imgs[i] = img
	}
	return imgs, nil
}

func writeImages(imgs []*image.RGBA, prefix string, scale float64) error {
	var g errgroup.Group
	for i, img := range imgs {
		i, img := i, img
		g.Go(func() error {
			return writePNG(fmt.Sprintf("%s-%d.png", prefix, i), scaleImage(img, scale))
		})
	}
	return g.Wait()
}

func scaleImage(img *image.RGBA, scale float64) image.Image {
	if scale == 1 {
		return img
	}
	sz := img.Bounds().Size()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(sz.X)*scale), int(float64(sz.Y)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

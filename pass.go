// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/glscope/fbo/driver"
	"github.com/glscope/fbo/internal/f32color"
)

// Pass is an open render pass into a RenderTarget. It is created by
// Context.Begin and must be closed with End; every pipeline method
// panics once End has been called.
type Pass struct {
	ctx    *Context
	target *RenderTarget
	// prev is the viewport current at Begin, restored by End.
	prev   image.Rectangle
	extent image.Point
	ended  bool
}

// Begin binds rt as the destination of subsequent drawing and returns
// the open pass. It fails with ErrReentrant, before touching the
// backend, while another pass of c is open.
//
// Zero dimensions of rt are resolved from the current viewport and
// kept once its surfaces are allocated. The viewport is then set to the origin and rt's extent.
func (c *Context) Begin(rt *RenderTarget) (*Pass, error) {
	if c.active != nil {
		return nil, ErrReentrant
	}
	if c.dev == nil || rt.fb == nil {
		return nil, ErrReleased
	}
	if rt.ctx != c {
		return nil, errors.New("fbo: render target belongs to another context")
	}
	dev := c.dev
	prev := dev.Viewport()
	width, height := rt.width, rt.height
	if width == 0 {
		width = prev.Dx()
	}
	if height == 0 {
		height = prev.Dy()
	}
	if !rt.allocated {
		if err := rt.allocate(width, height); err != nil {
			return nil, err
		}
	}
	rt.width, rt.height = width, height
	dev.BindFramebuffer(rt.fb)
	if n := len(rt.surfaces); n > 0 {
		dev.DrawBuffers(n)
	}
	if st := dev.FramebufferStatus(); !st.Complete {
		dev.BindFramebuffer(nil)
		Logger().Warn("fbo: incomplete framebuffer", "reason", st.Reason, "framebuffer", rt.fb.ID())
		return nil, fmt.Errorf("%w: %s", ErrIncompleteBinding, st.Reason)
	}
	p := &Pass{
		ctx:    c,
		target: rt,
		prev:   prev,
		extent: rt.Size(),
	}
	dev.SetViewport(image.Rectangle{Max: p.extent})
	c.active = p
	Logger().Debug("fbo: pass begin", "framebuffer", rt.fb.ID(), "extent", p.extent, "previous", prev)
	return p, nil
}

// End binds the default framebuffer, restores the viewport saved by
// Begin and closes the pass. Calling End again returns ErrPassEnded.
func (p *Pass) End() error {
	if p.ended {
		return ErrPassEnded
	}
	dev := p.ctx.dev
	dev.BindFramebuffer(nil)
	dev.SetViewport(p.prev)
	p.ended = true
	p.ctx.active = nil
	Logger().Debug("fbo: pass end", "viewport", p.prev)
	return nil
}

// Ended reports whether End has been called.
func (p *Pass) Ended() bool {
	return p.ended
}

// Target returns the target being rendered into.
func (p *Pass) Target() *RenderTarget {
	return p.target
}

// Extent returns the size the viewport was set to.
func (p *Pass) Extent() image.Point {
	return p.extent
}

// PreviousViewport returns the viewport End restores.
func (p *Pass) PreviousViewport() image.Rectangle {
	return p.prev
}

func (p *Pass) device() driver.Device {
	if p.ended {
		panic("fbo: render pass used after End")
	}
	return p.ctx.dev
}

// ColorMask enables or disables writes to all color channels.
func (p *Pass) ColorMask(enable bool) {
	p.device().ColorMask(enable)
}

// DepthMask enables or disables depth writes.
func (p *Pass) DepthMask(enable bool) {
	p.device().DepthMask(enable)
}

// SetCulling enables or disables face culling.
func (p *Pass) SetCulling(enable bool) {
	p.device().SetCulling(enable)
}

// SetDepthTest enables or disables depth testing.
func (p *Pass) SetDepthTest(enable bool) {
	p.device().SetDepthTest(enable)
}

// SetBlend enables or disables blending.
func (p *Pass) SetBlend(enable bool) {
	p.device().SetBlend(enable)
}

// AdditiveBlending enables blending with factors (One, One).
func (p *Pass) AdditiveBlending() {
	dev := p.device()
	dev.SetBlend(true)
	dev.BlendFunc(driver.BlendFactorOne, driver.BlendFactorOne)
}

// AlphaBlending enables blending with factors
// (SrcAlpha, OneMinusSrcAlpha).
func (p *Pass) AlphaBlending() {
	dev := p.device()
	dev.SetBlend(true)
	dev.BlendFunc(driver.BlendFactorSrcAlpha, driver.BlendFactorOneMinusSrcAlpha)
}

// BackFaceCulling enables culling of back faces, or disables culling.
func (p *Pass) BackFaceCulling(enable bool) {
	dev := p.device()
	if !enable {
		dev.SetCulling(false)
		return
	}
	dev.SetCulling(true)
	dev.CullFace(driver.FaceBack)
}

// Clear clears the color, depth and accumulation buffers to the
// current clear values.
func (p *Pass) Clear() {
	p.device().Clear(driver.ClearColor | driver.ClearDepth | driver.ClearAccum)
}

// SetClearColor sets the color used by Clear.
func (p *Pass) SetClearColor(r, g, b, a float32) {
	p.device().ClearColor(r, g, b, a)
}

// SetClearNRGBA sets the clear color from an sRGB color, converted to
// linear premultiplied values.
func (p *Pass) SetClearNRGBA(c color.NRGBA) {
	r, g, b, a := f32color.LinearFromSRGB(c).Float32()
	p.device().ClearColor(r, g, b, a)
}

// SetClearDepth sets the depth value used by Clear.
func (p *Pass) SetClearDepth(d float32) {
	p.device().ClearDepth(d)
}

// ReadPixels copies the region img.Rect of the color texture at slot
// into img. Coordinates have their origin in the top-left corner.
func (p *Pass) ReadPixels(slot int, img *image.RGBA) error {
	dev := p.device()
	if slot < 0 || slot >= len(p.target.surfaces) {
		return fmt.Errorf("fbo: no surface at slot %d", slot)
	}
	r := img.Rect
	if !r.In(image.Rectangle{Max: p.extent}) {
		return fmt.Errorf("fbo: region %v outside target extent %v", r, p.extent)
	}
	flip := dev.Caps().BottomLeftOrigin
	src := r
	if flip {
		src.Min.Y, src.Max.Y = p.extent.Y-r.Max.Y, p.extent.Y-r.Min.Y
	}
	w, h := r.Dx(), r.Dy()
	stride := w * 4
	buf := make([]byte, stride*h)
	if err := dev.ReadPixels(slot, src, buf); err != nil {
		return err
	}
	for y := 0; y < h; y++ {
		row := y
		if flip {
			row = h - 1 - y
		}
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], buf[row*stride:(row+1)*stride])
	}
	return nil
}

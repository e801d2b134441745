// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"fmt"
	"image"

	"github.com/glscope/fbo/driver"
)

// RenderTarget is an off-screen destination made of color textures
// that share one format, and an optional depth buffer. The target owns
// its textures exclusively and releases them in Release.
type RenderTarget struct {
	ctx       *Context
	fb        driver.Framebuffer
	width     int
	height    int
	props     driver.TextureProperties
	depthBits int
	surfaces  []driver.Texture
	// allocated is set once every surface has been configured and
	// attached.
	allocated bool
}

// NewRenderTarget creates a framebuffer with cfg.Attachments color
// textures. When both dimensions of cfg are known the textures are
// configured and attached immediately; otherwise that happens at the
// first Begin.
func (c *Context) NewRenderTarget(cfg Config) (*RenderTarget, error) {
	if c.dev == nil {
		return nil, ErrReleased
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n := c.dev.Caps().MaxColorAttachments; cfg.Attachments > n {
		return nil, fmt.Errorf("%w: %d > %d supported by the device", ErrTooManyAttachments, cfg.Attachments, n)
	}
	fb, err := c.dev.NewFramebuffer()
	if err != nil {
		return nil, err
	}
	rt := &RenderTarget{
		ctx:       c,
		fb:        fb,
		width:     cfg.Width,
		height:    cfg.Height,
		props:     cfg.Texture,
		depthBits: cfg.DepthBits,
		surfaces:  make([]driver.Texture, 0, cfg.Attachments),
	}
	for i := 0; i < cfg.Attachments; i++ {
		tex, err := c.dev.NewTexture()
		if err != nil {
			rt.release()
			return nil, fmt.Errorf("fbo: surface %d: %w", i, err)
		}
		rt.surfaces = append(rt.surfaces, tex)
	}
	if rt.width > 0 && rt.height > 0 {
		if err := rt.allocate(rt.width, rt.height); err != nil {
			rt.release()
			return nil, err
		}
	}
	Logger().Debug("fbo: render target created",
		"width", rt.width,
		"height", rt.height,
		"attachments", len(rt.surfaces),
		"format", rt.props.Format,
		"type", rt.props.Type,
	)
	return rt, nil
}

// allocate sets the target's extent to width by height, configures every
// surface at that extent and attaches surface i at color slot i. On error
// the previous extent is kept.
func (rt *RenderTarget) allocate(width, height int) (err error) {
	oldWidth, oldHeight := rt.width, rt.height
	rt.width, rt.height = width, height
	defer func() {
		if err != nil {
			rt.width, rt.height = oldWidth, oldHeight
		}
	}()
	for i, tex := range rt.surfaces {
		if _, err := rt.setupRenderTarget(tex); err != nil {
			return fmt.Errorf("fbo: surface %d: %w", i, err)
		}
		if err := rt.fb.AttachColor(i, tex); err != nil {
			return fmt.Errorf("fbo: attach surface %d: %w", i, err)
		}
	}
	if rt.depthBits > 0 {
		if err := rt.fb.AttachDepth(rt.depthBits, rt.Size()); err != nil {
			return fmt.Errorf("fbo: attach depth: %w", err)
		}
	}
	rt.allocated = true
	return nil
}

// setupRenderTarget applies the target's wrap, filters, pixel format,
// data type and extent to tex, commits it and returns its backend
// identifier.
func (rt *RenderTarget) setupRenderTarget(tex driver.Texture) (uint, error) {
	if err := tex.Configure(rt.props, rt.width, rt.height); err != nil {
		return 0, err
	}
	return tex.ID(), nil
}

// Size returns the target's extent. A zero dimension is unresolved
// until the first Begin.
func (rt *RenderTarget) Size() image.Point {
	return image.Point{X: rt.width, Y: rt.height}
}

// Properties returns the format shared by the target's textures.
func (rt *RenderTarget) Properties() driver.TextureProperties {
	return rt.props
}

// Surfaces returns the color textures in slot order. The target keeps
// ownership.
func (rt *RenderTarget) Surfaces() []driver.Texture {
	return append([]driver.Texture(nil), rt.surfaces...)
}

// Surface returns the color texture at slot.
func (rt *RenderTarget) Surface(slot int) driver.Texture {
	return rt.surfaces[slot]
}

// Framebuffer returns the backend framebuffer.
func (rt *RenderTarget) Framebuffer() driver.Framebuffer {
	return rt.fb
}

// ClearRenderTextures zeroes the contents of every texture. Extent and
// format are unchanged. It does nothing once the Context is released.
func (rt *RenderTarget) ClearRenderTextures() {
	if rt.ctx.dev == nil {
		return
	}
	for _, tex := range rt.surfaces {
		tex.Clear()
	}
}

// Release releases the textures, depth buffer and framebuffer. It fails
// with ErrTargetInUse while an open pass renders into rt. Releasing
// twice is a no-op.
//
// If the Context was released first, its device took the target's
// objects with it; Release then only drops its handles and returns
// ErrReleased.
func (rt *RenderTarget) Release() error {
	if rt.fb == nil {
		return nil
	}
	if rt.ctx.dev == nil {
		rt.surfaces = nil
		rt.fb = nil
		rt.allocated = false
		return ErrReleased
	}
	if p := rt.ctx.active; p != nil && p.target == rt {
		return ErrTargetInUse
	}
	rt.release()
	return nil
}

func (rt *RenderTarget) release() {
	for _, tex := range rt.surfaces {
		tex.Release()
	}
	rt.surfaces = nil
	if rt.fb != nil {
		rt.fb.Release()
		rt.fb = nil
	}
	rt.allocated = false
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package driver defines the graphics backend abstraction used by
// render targets and render passes.
package driver

import (
	"errors"
	"image"
)

// Device represents the abstraction of an underlying graphics API
// context. All methods act on the context's current state immediately.
type Device interface {
	Caps() Caps

	// NewTexture returns an unconfigured texture handle.
	NewTexture() (Texture, error)
	// NewFramebuffer returns an empty framebuffer.
	NewFramebuffer() (Framebuffer, error)

	// BindFramebuffer binds fb as the draw and read destination. A nil
	// fb binds the default framebuffer.
	BindFramebuffer(fb Framebuffer)
	// DrawBuffers declares color attachments 0 to n-1 of the bound
	// framebuffer as simultaneous outputs, slot i to attachment i.
	DrawBuffers(n int)
	// FramebufferStatus reports the completeness of the bound framebuffer.
	FramebufferStatus() Status

	// Viewport queries the current viewport from the backend.
	Viewport() image.Rectangle
	SetViewport(r image.Rectangle)

	ColorMask(enable bool)
	DepthMask(enable bool)
	SetCulling(enable bool)
	CullFace(face Face)
	SetDepthTest(enable bool)
	SetBlend(enable bool)
	BlendFunc(src, dst BlendFactor)

	Clear(bits ClearBits)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)

	// ReadPixels reads the color attachment at slot of the bound
	// framebuffer into pixels as tightly packed RGBA8.
	ReadPixels(slot int, src image.Rectangle, pixels []byte) error

	Release()
}

// Texture is an output surface attachable to a framebuffer slot.
type Texture interface {
	// Configure applies props and size to the texture and commits the
	// storage to the backend.
	Configure(props TextureProperties, width, height int) error
	// ID returns the backend identifier of the texture.
	ID() uint
	Size() image.Point
	// Clear resets the texture contents without reconfiguring it.
	Clear()
	Release()
}

// Framebuffer is an off-screen render destination.
type Framebuffer interface {
	ID() uint
	// AttachColor attaches tex at color slot.
	AttachColor(slot int, tex Texture) error
	// AttachDepth allocates and attaches a depth buffer of the given
	// precision and size.
	AttachDepth(bits int, size image.Point) error
	Release()
}

type Caps struct {
	// BottomLeftOrigin is true if the driver has the origin in the lower left
	// corner. The OpenGL driver returns true.
	BottomLeftOrigin bool
	// MaxColorAttachments is the number of color slots a framebuffer
	// supports.
	MaxColorAttachments int
	MaxTextureSize      int
}

// Status is the completeness of a framebuffer binding.
type Status struct {
	Complete bool
	// Reason describes an incomplete binding.
	Reason string
}

// TextureProperties is the sampling and storage format shared by the
// surfaces of a render target.
type TextureProperties struct {
	Wrap      Wrap
	MinFilter Filter
	MagFilter Filter
	Format    PixelFormat
	Type      DataType
}

// Validate reports unknown enumeration values.
func (p TextureProperties) Validate() error {
	switch {
	case p.Wrap >= wrapCount:
		return errors.New("driver: unknown wrap mode")
	case p.MinFilter >= filterCount, p.MagFilter >= filterCount:
		return errors.New("driver: unknown filter")
	case p.Format >= pixelFormatCount:
		return errors.New("driver: unknown pixel format")
	case p.Type >= dataTypeCount:
		return errors.New("driver: unknown data type")
	}
	return nil
}

// BytesPerPixel returns the storage size of one texel.
func (p TextureProperties) BytesPerPixel() int {
	return p.Format.Channels() * p.Type.Size()
}

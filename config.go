// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"fmt"

	"github.com/glscope/fbo/driver"
)

// MaxAttachments is the upper bound on color attachments per target,
// regardless of what the backend supports.
const MaxAttachments = 50

// Config describes a RenderTarget.
type Config struct {
	// Width and Height of the target in pixels. Zero means the
	// dimension is taken from the viewport at the first Begin.
	Width, Height int
	// Attachments is the number of color textures. Texture i is
	// written through color slot i.
	Attachments int
	// Texture is applied to every color texture.
	Texture driver.TextureProperties
	// DepthBits requests a depth buffer of the given precision
	// (16, 24 or 32). Zero means no depth buffer.
	DepthBits int
}

// DefaultConfig returns a single RGBA8 attachment with linear filtering
// and the viewport's extent.
func DefaultConfig() Config {
	return Config{
		Attachments: 1,
		Texture: driver.TextureProperties{
			Wrap:      driver.WrapClampToEdge,
			MinFilter: driver.FilterLinear,
			MagFilter: driver.FilterLinear,
			Format:    driver.PixelFormatRGBA,
			Type:      driver.DataTypeUnsignedByte,
		},
	}
}

// Validate reports whether c describes a valid target.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("fbo: negative size %dx%d", c.Width, c.Height)
	}
	if c.Attachments < 0 {
		return fmt.Errorf("fbo: negative attachment count %d", c.Attachments)
	}
	if c.Attachments > MaxAttachments {
		return fmt.Errorf("%w: %d > %d", ErrTooManyAttachments, c.Attachments, MaxAttachments)
	}
	switch c.DepthBits {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("fbo: unsupported depth precision %d", c.DepthBits)
	}
	return c.Texture.Validate()
}

// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glscope/fbo/driver"
	"github.com/glscope/fbo/internal/drivertest"
)

func TestNewRenderTargetDepth(t *testing.T) {
	ctx, dev := newTestContext(t)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 256, 128
	cfg.DepthBits = 16
	rt, err := ctx.NewRenderTarget(cfg)
	require.NoError(t, err)

	fb := dev.Framebuffers[0]
	assert.Equal(t, 16, fb.DepthBits)
	assert.Equal(t, image.Pt(256, 128), fb.DepthSize)
	assert.Equal(t, image.Pt(256, 128), rt.Surface(0).Size())
	assert.Equal(t, cfg.Texture, rt.Properties())
	assert.Same(t, fb, rt.Framebuffer())
}

func TestNewRenderTargetTooManyAttachments(t *testing.T) {
	ctx, dev := newTestContext(t)

	cfg := DefaultConfig()
	cfg.Attachments = MaxAttachments + 1
	_, err := ctx.NewRenderTarget(cfg)
	assert.ErrorIs(t, err, ErrTooManyAttachments)

	cfg.Attachments = dev.Capabilities.MaxColorAttachments + 1
	_, err = ctx.NewRenderTarget(cfg)
	assert.ErrorIs(t, err, ErrTooManyAttachments)
	assert.Empty(t, dev.Framebuffers, "no resources are created for a rejected config")

	cfg.Attachments = dev.Capabilities.MaxColorAttachments
	_, err = ctx.NewRenderTarget(cfg)
	assert.NoError(t, err)
}

func TestNewRenderTargetConfigureError(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.ConfigureErr = errors.New("out of memory")
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 64
	cfg.Attachments = 2

	_, err := ctx.NewRenderTarget(cfg)
	assert.ErrorContains(t, err, "out of memory")
	for _, tex := range dev.Textures {
		assert.True(t, tex.Released)
	}
	assert.True(t, dev.Framebuffers[0].Released)
}

func TestDeferredAllocationError(t *testing.T) {
	ctx, dev := newTestContext(t)
	rt := newTestTarget(t, ctx, 0, 0, 1)
	dev.ConfigureErr = errors.New("out of memory")

	_, err := ctx.Begin(rt)
	assert.ErrorContains(t, err, "out of memory")
	assert.Nil(t, ctx.Active())
	assert.Equal(t, image.Point{}, rt.Size(), "a failed allocation must not resolve the extent")

	// The retry resolves against the viewport current at that Begin.
	dev.ConfigureErr = nil
	dev.ViewportRect = image.Rect(0, 0, 320, 200)
	dev.Reset()
	p, err := ctx.Begin(rt)
	require.NoError(t, err)
	assert.Contains(t, dev.Calls, "Texture(2).Configure(rgba ubyte linear/linear clamp, 320x200)")
	assert.Equal(t, image.Pt(320, 200), p.Extent())
	assert.Equal(t, image.Pt(320, 200), rt.Size())
	require.NoError(t, p.End())
}

func TestReleaseAfterContext(t *testing.T) {
	ctx, dev := newTestContext(t)
	rt := newTestTarget(t, ctx, 8, 8, 2)
	require.NoError(t, ctx.Release())
	dev.Reset()

	assert.ErrorIs(t, rt.Release(), ErrReleased)
	assert.Empty(t, dev.Calls, "released device must not be called")
	assert.NoError(t, rt.Release())

	rt2 := newTestTarget(t, NewContext(drivertest.New()), 8, 8, 1)
	require.NoError(t, rt2.ctx.Release())
	assert.NotPanics(t, rt2.ClearRenderTextures)
}

func TestRenderTargetRelease(t *testing.T) {
	ctx, dev := newTestContext(t)
	rt := newTestTarget(t, ctx, 8, 8, 2)
	p, err := ctx.Begin(rt)
	require.NoError(t, err)

	assert.ErrorIs(t, rt.Release(), ErrTargetInUse)
	assert.False(t, dev.Framebuffers[0].Released)

	require.NoError(t, p.End())
	dev.Reset()
	require.NoError(t, rt.Release())
	assert.Equal(t, []string{
		"Texture(2).Release",
		"Texture(3).Release",
		"Framebuffer(1).Release",
	}, dev.Calls)

	dev.Reset()
	require.NoError(t, rt.Release())
	assert.Empty(t, dev.Calls)

	_, err = ctx.Begin(rt)
	assert.ErrorIs(t, err, ErrReleased)
}

func TestReleaseOtherTargetDuringPass(t *testing.T) {
	ctx, _ := newTestContext(t)
	a := newTestTarget(t, ctx, 8, 8, 1)
	b := newTestTarget(t, ctx, 8, 8, 1)
	p, err := ctx.Begin(a)
	require.NoError(t, err)
	defer p.End()
	assert.NoError(t, b.Release())
}

func TestClearRenderTextures(t *testing.T) {
	ctx, dev := newTestContext(t)
	rt := newTestTarget(t, ctx, 8, 8, 3)
	dev.Reset()
	rt.ClearRenderTextures()
	assert.Equal(t, []string{
		"Texture(2).Clear",
		"Texture(3).Clear",
		"Texture(4).Clear",
	}, dev.Calls)
	assert.Equal(t, image.Pt(8, 8), rt.Size())
}

func TestSurfacesCopy(t *testing.T) {
	ctx, _ := newTestContext(t)
	rt := newTestTarget(t, ctx, 8, 8, 2)
	s := rt.Surfaces()
	s[0] = nil
	assert.NotNil(t, rt.Surface(0))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"fixed size", func(c *Config) { c.Width, c.Height = 640, 480 }, true},
		{"max attachments", func(c *Config) { c.Attachments = MaxAttachments }, true},
		{"no attachments", func(c *Config) { c.Attachments = 0 }, true},
		{"depth 24", func(c *Config) { c.DepthBits = 24 }, true},
		{"negative width", func(c *Config) { c.Width = -1 }, false},
		{"negative attachments", func(c *Config) { c.Attachments = -1 }, false},
		{"depth 8", func(c *Config) { c.DepthBits = 8 }, false},
		{"bad format", func(c *Config) { c.Texture.Format = driver.PixelFormat(99) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mod(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

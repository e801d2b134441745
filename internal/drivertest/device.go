// SPDX-License-Identifier: Unlicense OR MIT

// Package drivertest provides a driver.Device that records every call
// instead of talking to a GPU.
package drivertest

import (
	"fmt"
	"image"

	"github.com/glscope/fbo/driver"
)

// Device is a recording driver.Device. Queries are answered from its
// exported fields; mutations are appended to Calls and applied to the
// fields they affect.
type Device struct {
	Calls []string

	Capabilities driver.Caps
	// ViewportRect is returned by Viewport and updated by SetViewport.
	ViewportRect image.Rectangle
	// Status is returned by FramebufferStatus.
	Status driver.Status
	// Bound is the framebuffer bound last, nil for the default one.
	Bound driver.Framebuffer
	// Pixel fills every byte returned by ReadPixels.
	Pixel byte
	// ConfigureErr, if set, is returned by Texture.Configure.
	ConfigureErr error

	Textures     []*Texture
	Framebuffers []*Framebuffer
	Released     bool

	nextID uint
}

// New returns a Device with an 800x600 viewport, eight color slots and
// complete framebuffers.
func New() *Device {
	return &Device{
		Capabilities: driver.Caps{
			BottomLeftOrigin:    true,
			MaxColorAttachments: 8,
			MaxTextureSize:      4096,
		},
		ViewportRect: image.Rect(0, 0, 800, 600),
		Status:       driver.Status{Complete: true},
	}
}

// Reset forgets the recorded calls.
func (d *Device) Reset() {
	d.Calls = nil
}

func (d *Device) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) id() uint {
	d.nextID++
	return d.nextID
}

func (d *Device) Caps() driver.Caps {
	return d.Capabilities
}

func (d *Device) NewTexture() (driver.Texture, error) {
	t := &Texture{dev: d, id: d.id()}
	d.Textures = append(d.Textures, t)
	return t, nil
}

func (d *Device) NewFramebuffer() (driver.Framebuffer, error) {
	fb := &Framebuffer{dev: d, id: d.id(), Colors: map[int]*Texture{}}
	d.Framebuffers = append(d.Framebuffers, fb)
	return fb, nil
}

func (d *Device) BindFramebuffer(fb driver.Framebuffer) {
	d.Bound = fb
	if fb == nil {
		d.record("BindFramebuffer(default)")
		return
	}
	d.record("BindFramebuffer(%d)", fb.ID())
}

func (d *Device) DrawBuffers(n int) {
	d.record("DrawBuffers(%d)", n)
}

func (d *Device) FramebufferStatus() driver.Status {
	d.record("FramebufferStatus")
	return d.Status
}

func (d *Device) Viewport() image.Rectangle {
	d.record("Viewport")
	return d.ViewportRect
}

func (d *Device) SetViewport(r image.Rectangle) {
	d.ViewportRect = r
	d.record("SetViewport(%v)", r)
}

func (d *Device) ColorMask(enable bool) { d.record("ColorMask(%v)", enable) }
func (d *Device) DepthMask(enable bool) { d.record("DepthMask(%v)", enable) }
func (d *Device) SetCulling(enable bool) { d.record("SetCulling(%v)", enable) }
func (d *Device) CullFace(face driver.Face) { d.record("CullFace(%v)", face) }
func (d *Device) SetDepthTest(enable bool) { d.record("SetDepthTest(%v)", enable) }
func (d *Device) SetBlend(enable bool) { d.record("SetBlend(%v)", enable) }

func (d *Device) BlendFunc(src, dst driver.BlendFactor) {
	d.record("BlendFunc(%v, %v)", src, dst)
}

func (d *Device) Clear(bits driver.ClearBits) { d.record("Clear(%v)", bits) }

func (d *Device) ClearColor(r, g, b, a float32) {
	d.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (d *Device) ClearDepth(v float32) { d.record("ClearDepth(%g)", v) }

func (d *Device) ReadPixels(slot int, src image.Rectangle, pixels []byte) error {
	if d.Bound == nil {
		return fmt.Errorf("drivertest: ReadPixels with default framebuffer bound")
	}
	for i := range pixels {
		pixels[i] = d.Pixel
	}
	d.record("ReadPixels(%d, %v)", slot, src)
	return nil
}

func (d *Device) Release() {
	d.Released = true
	d.record("Release")
}

// Texture is a recording driver.Texture.
type Texture struct {
	dev *Device
	id  uint

	Props    driver.TextureProperties
	Width    int
	Height   int
	Released bool
}

func (t *Texture) Configure(props driver.TextureProperties, width, height int) error {
	t.dev.record("Texture(%d).Configure(%v %v %v/%v %v, %dx%d)", t.id,
		props.Format, props.Type, props.MinFilter, props.MagFilter, props.Wrap, width, height)
	if t.dev.ConfigureErr != nil {
		return t.dev.ConfigureErr
	}
	t.Props = props
	t.Width, t.Height = width, height
	return nil
}

func (t *Texture) ID() uint { return t.id }

func (t *Texture) Size() image.Point { return image.Pt(t.Width, t.Height) }

func (t *Texture) Clear() { t.dev.record("Texture(%d).Clear", t.id) }

func (t *Texture) Release() {
	t.Released = true
	t.dev.record("Texture(%d).Release", t.id)
}

// Framebuffer is a recording driver.Framebuffer.
type Framebuffer struct {
	dev *Device
	id  uint

	Colors    map[int]*Texture
	DepthBits int
	DepthSize image.Point
	Released  bool
}

func (f *Framebuffer) ID() uint { return f.id }

func (f *Framebuffer) AttachColor(slot int, tex driver.Texture) error {
	f.dev.record("Framebuffer(%d).AttachColor(%d, %d)", f.id, slot, tex.ID())
	f.Colors[slot] = tex.(*Texture)
	return nil
}

func (f *Framebuffer) AttachDepth(bits int, size image.Point) error {
	f.dev.record("Framebuffer(%d).AttachDepth(%d, %v)", f.id, bits, size)
	f.DepthBits = bits
	f.DepthSize = size
	return nil
}

func (f *Framebuffer) Release() {
	f.Released = true
	f.dev.record("Framebuffer(%d).Release", f.id)
}

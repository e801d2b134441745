// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"errors"
	"fmt"
	"image"

	"github.com/glscope/fbo/driver"
	"github.com/glscope/fbo/internal/gl"
)

func (t *gpuTexture) ID() uint {
	return t.obj.V
}

func (t *gpuTexture) Size() image.Point {
	return image.Point{X: t.width, Y: t.height}
}

func (t *gpuTexture) Configure(props driver.TextureProperties, width, height int) error {
	if err := props.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("opengl: invalid texture size %dx%d", width, height)
	}
	b := t.backend
	if limit := b.feats.MaxTextureSize; limit > 0 && (width > limit || height > limit) {
		return fmt.Errorf("opengl: texture size %dx%d exceeds maximum %d", width, height, limit)
	}
	f := b.funcs
	glErr(f)
	saved := b.queryState()
	triple := textureTripleFor(props)
	f.BindTexture(gl.TEXTURE_2D, t.obj)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, toTexWrap(props.Wrap))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, toTexWrap(props.Wrap))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, toTexFilter(props.MinFilter))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, toTexFilter(props.MagFilter))
	f.TexImage2D(gl.TEXTURE_2D, 0, triple.internalFormat, width, height, triple.format, triple.typ)
	err := glErr(f)
	b.restoreState(saved)
	if err != nil {
		return fmt.Errorf("opengl: configure texture: %w", err)
	}
	t.props = props
	t.triple = triple
	t.width, t.height = width, height
	return nil
}

// Clear zeroes the texture storage. Unconfigured textures are left alone.
func (t *gpuTexture) Clear() {
	if t.width == 0 || t.height == 0 {
		return
	}
	b := t.backend
	f := b.funcs
	zero := make([]byte, t.width*t.height*t.props.BytesPerPixel())
	saved := b.queryState()
	f.BindTexture(gl.TEXTURE_2D, t.obj)
	f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	f.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.width, t.height, t.triple.format, t.triple.typ, zero)
	b.restoreState(saved)
}

func (t *gpuTexture) Release() {
	if t.obj.Valid() {
		t.backend.funcs.DeleteTexture(t.obj)
	}
	*t = gpuTexture{}
}

func (f *gpuFramebuffer) ID() uint {
	return f.obj.V
}

func (f *gpuFramebuffer) AttachColor(slot int, tex driver.Texture) error {
	b := f.backend
	if slot < 0 || slot >= b.feats.MaxColorAttachments {
		return fmt.Errorf("opengl: color slot %d out of range [0,%d)", slot, b.feats.MaxColorAttachments)
	}
	gltex, ok := tex.(*gpuTexture)
	if !ok {
		return errors.New("opengl: texture not created by this backend")
	}
	glErr(b.funcs)
	saved := b.queryState()
	b.funcs.BindFramebuffer(gl.FRAMEBUFFER, f.obj)
	b.funcs.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+gl.Enum(slot), gl.TEXTURE_2D, gltex.obj, 0)
	err := glErr(b.funcs)
	b.restoreState(saved)
	return err
}

func (f *gpuFramebuffer) AttachDepth(bits int, size image.Point) error {
	if bits <= 0 {
		return fmt.Errorf("opengl: invalid depth precision %d", bits)
	}
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("opengl: invalid depth buffer size %v", size)
	}
	b := f.backend
	glErr(b.funcs)
	saved := b.queryState()
	if f.hasDepth {
		b.funcs.DeleteRenderbuffer(f.depthBuf)
		f.hasDepth = false
	}
	format := gl.Enum(gl.DEPTH_COMPONENT16)
	switch {
	case bits > 24:
		format = gl.DEPTH_COMPONENT32F
	case bits > 16:
		format = gl.DEPTH_COMPONENT24
	}
	depthBuf := b.funcs.CreateRenderbuffer()
	b.funcs.BindRenderbuffer(gl.RENDERBUFFER, depthBuf)
	b.funcs.RenderbufferStorage(gl.RENDERBUFFER, format, size.X, size.Y)
	b.funcs.BindFramebuffer(gl.FRAMEBUFFER, f.obj)
	b.funcs.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depthBuf)
	err := glErr(b.funcs)
	b.restoreState(saved)
	if err != nil {
		b.funcs.DeleteRenderbuffer(depthBuf)
		return fmt.Errorf("opengl: attach depth: %w", err)
	}
	f.depthBuf = depthBuf
	f.hasDepth = true
	return nil
}

func (f *gpuFramebuffer) Release() {
	b := f.backend
	if f.hasDepth {
		b.funcs.DeleteRenderbuffer(f.depthBuf)
	}
	if f.obj.Valid() {
		b.funcs.DeleteFramebuffer(f.obj)
	}
	*f = gpuFramebuffer{}
}

func textureTripleFor(props driver.TextureProperties) textureTriple {
	var t textureTriple
	switch props.Type {
	case driver.DataTypeUnsignedByte:
		t.typ = gl.UNSIGNED_BYTE
	case driver.DataTypeFloat:
		t.typ = gl.FLOAT
	case driver.DataTypeHalfFloat:
		t.typ = gl.HALF_FLOAT
	default:
		panic("unsupported data type")
	}
	// Internal formats indexed by data type: ubyte, float, half.
	var internal [3]gl.Enum
	switch props.Format {
	case driver.PixelFormatRGBA:
		t.format = gl.RGBA
		internal = [3]gl.Enum{gl.RGBA8, gl.RGBA32F, gl.RGBA16F}
	case driver.PixelFormatRGB:
		t.format = gl.RGB
		internal = [3]gl.Enum{gl.RGB8, gl.RGB32F, gl.RGB16F}
	case driver.PixelFormatRG:
		t.format = gl.RG
		internal = [3]gl.Enum{gl.RG8, gl.RG32F, gl.RG16F}
	case driver.PixelFormatRed:
		t.format = gl.RED
		internal = [3]gl.Enum{gl.R8, gl.R32F, gl.R16F}
	default:
		panic("unsupported pixel format")
	}
	t.internalFormat = internal[props.Type]
	return t
}

func toTexFilter(f driver.Filter) int {
	switch f {
	case driver.FilterNearest:
		return gl.NEAREST
	case driver.FilterLinear:
		return gl.LINEAR
	default:
		panic("unsupported texture filter")
	}
}

func toTexWrap(w driver.Wrap) int {
	switch w {
	case driver.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case driver.WrapRepeat:
		return gl.REPEAT
	case driver.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		panic("unsupported wrap mode")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package opengl implements driver.Device for OpenGL 2.1 compatibility
// contexts with framebuffer object support.
package opengl

import (
	"errors"
	"fmt"
	"image"

	"github.com/glscope/fbo"
	"github.com/glscope/fbo/driver"
	"github.com/glscope/fbo/internal/gl"
)

// Backend implements driver.Device.
type Backend struct {
	funcs gl.Functions

	glver [2]int
	feats driver.Caps
}

// glState is a snapshot of the bindings that resource setup disturbs.
// Setup saves it before binding its own objects and restores it after,
// so creating or clearing a resource never changes what the caller had
// bound.
type glState struct {
	drawFBO     gl.Framebuffer
	renderBuf   gl.Renderbuffer
	tex         gl.Texture
	readBuf     gl.Enum
	packAlign   int
	unpackAlign int
}

type gpuTexture struct {
	backend *Backend
	obj     gl.Texture
	props   driver.TextureProperties
	triple  textureTriple
	width   int
	height  int
}

type gpuFramebuffer struct {
	backend  *Backend
	obj      gl.Framebuffer
	hasDepth bool
	depthBuf gl.Renderbuffer
}

// textureTriple holds the type settings for
// a TexImage2D call.
type textureTriple struct {
	internalFormat gl.Enum
	format         gl.Enum
	typ            gl.Enum
}

// NewBackend returns a Backend for the context current on the calling
// thread.
func NewBackend(f gl.Functions) (*Backend, error) {
	glVer := f.GetString(gl.VERSION)
	ver, err := gl.ParseGLVersion(glVer)
	if err != nil {
		return nil, err
	}
	if ver[0] < 2 {
		return nil, fmt.Errorf("opengl: unsupported version %d.%d", ver[0], ver[1])
	}
	b := &Backend{
		funcs: f,
		glver: ver,
	}
	b.feats.BottomLeftOrigin = true
	b.feats.MaxColorAttachments = f.GetInteger(gl.MAX_COLOR_ATTACHMENTS)
	if n := f.GetInteger(gl.MAX_DRAW_BUFFERS); n < b.feats.MaxColorAttachments {
		b.feats.MaxColorAttachments = n
	}
	b.feats.MaxTextureSize = f.GetInteger(gl.MAX_TEXTURE_SIZE)
	fbo.Logger().Debug("opengl: backend created",
		"version", glVer,
		"renderer", f.GetString(gl.RENDERER),
		"max_color_attachments", b.feats.MaxColorAttachments,
	)
	return b, nil
}

func (b *Backend) Caps() driver.Caps {
	return b.feats
}

func (b *Backend) queryState() glState {
	f := b.funcs
	return glState{
		drawFBO:     gl.Framebuffer{V: uint(f.GetInteger(gl.FRAMEBUFFER_BINDING))},
		renderBuf:   gl.Renderbuffer{V: uint(f.GetInteger(gl.RENDERBUFFER_BINDING))},
		tex:         gl.Texture{V: uint(f.GetInteger(gl.TEXTURE_BINDING_2D))},
		readBuf:     gl.Enum(f.GetInteger(gl.READ_BUFFER)),
		packAlign:   f.GetInteger(gl.PACK_ALIGNMENT),
		unpackAlign: f.GetInteger(gl.UNPACK_ALIGNMENT),
	}
}

func (b *Backend) restoreState(dst glState) {
	f := b.funcs
	f.BindFramebuffer(gl.FRAMEBUFFER, dst.drawFBO)
	f.BindRenderbuffer(gl.RENDERBUFFER, dst.renderBuf)
	f.BindTexture(gl.TEXTURE_2D, dst.tex)
	f.PixelStorei(gl.PACK_ALIGNMENT, dst.packAlign)
	f.PixelStorei(gl.UNPACK_ALIGNMENT, dst.unpackAlign)
	if dst.drawFBO.Valid() {
		f.ReadBuffer(dst.readBuf)
	}
}

func (b *Backend) NewTexture() (driver.Texture, error) {
	glErr(b.funcs)
	obj := b.funcs.CreateTexture()
	if !obj.Valid() {
		return nil, errors.New("opengl: glGenTextures failed")
	}
	return &gpuTexture{backend: b, obj: obj}, nil
}

func (b *Backend) NewFramebuffer() (driver.Framebuffer, error) {
	glErr(b.funcs)
	obj := b.funcs.CreateFramebuffer()
	if !obj.Valid() {
		return nil, errors.New("opengl: glGenFramebuffers failed")
	}
	return &gpuFramebuffer{backend: b, obj: obj}, nil
}

func (b *Backend) BindFramebuffer(fb driver.Framebuffer) {
	var obj gl.Framebuffer
	if fb != nil {
		obj = fb.(*gpuFramebuffer).obj
	}
	b.funcs.BindFramebuffer(gl.FRAMEBUFFER, obj)
}

func (b *Backend) DrawBuffers(n int) {
	bufs := make([]gl.Enum, n)
	for i := range bufs {
		bufs[i] = gl.COLOR_ATTACHMENT0 + gl.Enum(i)
	}
	b.funcs.DrawBuffers(bufs)
}

func (b *Backend) FramebufferStatus() driver.Status {
	st := b.funcs.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if st == gl.FRAMEBUFFER_COMPLETE {
		return driver.Status{Complete: true}
	}
	return driver.Status{Reason: gl.StatusString(st)}
}

func (b *Backend) Viewport() image.Rectangle {
	v := b.funcs.GetInteger4(gl.VIEWPORT)
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3])
}

func (b *Backend) SetViewport(r image.Rectangle) {
	b.funcs.Viewport(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (b *Backend) ColorMask(enable bool) {
	b.funcs.ColorMask(enable, enable, enable, enable)
}

func (b *Backend) DepthMask(enable bool) {
	b.funcs.DepthMask(enable)
}

func (b *Backend) SetCulling(enable bool) {
	b.set(gl.CULL_FACE, enable)
}

func (b *Backend) CullFace(face driver.Face) {
	b.funcs.CullFace(toGLFace(face))
}

func (b *Backend) SetDepthTest(enable bool) {
	b.set(gl.DEPTH_TEST, enable)
}

func (b *Backend) SetBlend(enable bool) {
	b.set(gl.BLEND, enable)
}

func (b *Backend) BlendFunc(sfactor, dfactor driver.BlendFactor) {
	b.funcs.BlendFunc(toGLBlendFactor(sfactor), toGLBlendFactor(dfactor))
}

func (b *Backend) set(target gl.Enum, enable bool) {
	if enable {
		b.funcs.Enable(target)
	} else {
		b.funcs.Disable(target)
	}
}

func (b *Backend) Clear(bits driver.ClearBits) {
	var mask gl.Enum
	if bits&driver.ClearColor != 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if bits&driver.ClearDepth != 0 {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	// Framebuffer objects have no accumulation buffer; only the default
	// framebuffer of a compatibility context does.
	if bits&driver.ClearAccum != 0 && b.funcs.GetInteger(gl.FRAMEBUFFER_BINDING) == 0 {
		mask |= gl.ACCUM_BUFFER_BIT
	}
	if mask != 0 {
		b.funcs.Clear(mask)
	}
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.funcs.ClearColor(r, g, bl, a)
}

func (b *Backend) ClearDepth(d float32) {
	b.funcs.ClearDepth(d)
}

func (b *Backend) ReadPixels(slot int, src image.Rectangle, pixels []byte) error {
	if slot < 0 || slot >= b.feats.MaxColorAttachments {
		return fmt.Errorf("opengl: color slot %d out of range", slot)
	}
	if n := src.Dx() * src.Dy() * 4; len(pixels) < n {
		return fmt.Errorf("opengl: pixel buffer too small: %d < %d", len(pixels), n)
	}
	glErr(b.funcs)
	saved := b.queryState()
	if !saved.drawFBO.Valid() {
		return errors.New("opengl: ReadPixels needs a bound framebuffer object")
	}
	b.funcs.ReadBuffer(gl.COLOR_ATTACHMENT0 + gl.Enum(slot))
	b.funcs.PixelStorei(gl.PACK_ALIGNMENT, 1)
	b.funcs.ReadPixels(src.Min.X, src.Min.Y, src.Dx(), src.Dy(), gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	err := glErr(b.funcs)
	b.restoreState(saved)
	return err
}

func (b *Backend) Release() {
	if b.funcs != nil {
		b.funcs.Flush()
	}
	*b = Backend{}
}

func glErr(f gl.Functions) error {
	if st := f.GetError(); st != gl.NO_ERROR {
		return fmt.Errorf("glGetError: %#x", uint(st))
	}
	return nil
}

func toGLBlendFactor(f driver.BlendFactor) gl.Enum {
	switch f {
	case driver.BlendFactorZero:
		return gl.ZERO
	case driver.BlendFactorOne:
		return gl.ONE
	case driver.BlendFactorSrcAlpha:
		return gl.SRC_ALPHA
	case driver.BlendFactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case driver.BlendFactorDstColor:
		return gl.DST_COLOR
	default:
		panic("unsupported blend factor")
	}
}

func toGLFace(f driver.Face) gl.Enum {
	switch f {
	case driver.FaceBack:
		return gl.BACK
	case driver.FaceFront:
		return gl.FRONT
	case driver.FaceFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		panic("unsupported face")
	}
}

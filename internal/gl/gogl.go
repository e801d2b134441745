// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gl

import (
	"fmt"
	"unsafe"

	gogl "github.com/go-gl/gl/v2.1/gl"
)

// goglFunctions implements Functions on top of the go-gl bindings. The
// compatibility profile is used because clearing the accumulation buffer
// is part of the render target clear.
type goglFunctions struct{}

// NewFunctions loads the OpenGL entry points for the context current on
// the calling thread.
func NewFunctions() (Functions, error) {
	if err := gogl.Init(); err != nil {
		return nil, fmt.Errorf("gl: init: %w", err)
	}
	return goglFunctions{}, nil
}

func (goglFunctions) BindFramebuffer(target Enum, fb Framebuffer) {
	gogl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (goglFunctions) BindRenderbuffer(target Enum, rb Renderbuffer) {
	gogl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (goglFunctions) BindTexture(target Enum, t Texture) {
	gogl.BindTexture(uint32(target), uint32(t.V))
}

func (goglFunctions) BlendFunc(sfactor, dfactor Enum) {
	gogl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (goglFunctions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(gogl.CheckFramebufferStatus(uint32(target)))
}

func (goglFunctions) Clear(mask Enum) {
	gogl.Clear(uint32(mask))
}

func (goglFunctions) ClearColor(red, green, blue, alpha float32) {
	gogl.ClearColor(red, green, blue, alpha)
}

func (goglFunctions) ClearDepth(d float32) {
	gogl.ClearDepth(float64(d))
}

func (goglFunctions) ColorMask(red, green, blue, alpha bool) {
	gogl.ColorMask(red, green, blue, alpha)
}

func (goglFunctions) CreateFramebuffer() Framebuffer {
	var fb uint32
	gogl.GenFramebuffers(1, &fb)
	return Framebuffer{V: uint(fb)}
}

func (goglFunctions) CreateRenderbuffer() Renderbuffer {
	var rb uint32
	gogl.GenRenderbuffers(1, &rb)
	return Renderbuffer{V: uint(rb)}
}

func (goglFunctions) CreateTexture() Texture {
	var t uint32
	gogl.GenTextures(1, &t)
	return Texture{V: uint(t)}
}

func (goglFunctions) CullFace(mode Enum) {
	gogl.CullFace(uint32(mode))
}

func (goglFunctions) DeleteFramebuffer(fb Framebuffer) {
	v := uint32(fb.V)
	gogl.DeleteFramebuffers(1, &v)
}

func (goglFunctions) DeleteRenderbuffer(rb Renderbuffer) {
	v := uint32(rb.V)
	gogl.DeleteRenderbuffers(1, &v)
}

func (goglFunctions) DeleteTexture(t Texture) {
	v := uint32(t.V)
	gogl.DeleteTextures(1, &v)
}

func (goglFunctions) DepthMask(mask bool) {
	gogl.DepthMask(mask)
}

func (goglFunctions) Disable(cap Enum) {
	gogl.Disable(uint32(cap))
}

func (goglFunctions) DrawBuffers(bufs []Enum) {
	if len(bufs) == 0 {
		return
	}
	b := make([]uint32, len(bufs))
	for i, e := range bufs {
		b[i] = uint32(e)
	}
	gogl.DrawBuffers(int32(len(b)), &b[0])
}

func (goglFunctions) Enable(cap Enum) {
	gogl.Enable(uint32(cap))
}

func (goglFunctions) Flush() {
	gogl.Flush()
}

func (goglFunctions) FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, rb Renderbuffer) {
	gogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(rb.V))
}

func (goglFunctions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	gogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (goglFunctions) GetError() Enum {
	return Enum(gogl.GetError())
}

func (goglFunctions) GetInteger(pname Enum) int {
	var v int32
	gogl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (goglFunctions) GetInteger4(pname Enum) [4]int {
	var v [4]int32
	gogl.GetIntegerv(uint32(pname), &v[0])
	return [4]int{int(v[0]), int(v[1]), int(v[2]), int(v[3])}
}

func (goglFunctions) GetString(pname Enum) string {
	s := gogl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gogl.GoStr(s)
}

func (goglFunctions) PixelStorei(pname Enum, param int) {
	gogl.PixelStorei(uint32(pname), int32(param))
}

func (goglFunctions) ReadBuffer(src Enum) {
	gogl.ReadBuffer(uint32(src))
}

func (goglFunctions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	gogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
}

func (goglFunctions) RenderbufferStorage(target, internalformat Enum, width, height int) {
	gogl.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (goglFunctions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum) {
	gogl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), nil)
}

func (goglFunctions) TexParameteri(target, pname Enum, param int) {
	gogl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (goglFunctions) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	gogl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
}

func (goglFunctions) Viewport(x, y, width, height int) {
	gogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

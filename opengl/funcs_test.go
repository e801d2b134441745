// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"

	"github.com/glscope/fbo/internal/gl"
)

// fakeFuncs records every GL call issued through it and serves queries
// from its fields.
type fakeFuncs struct {
	calls []string

	version  string
	ints     map[gl.Enum]int
	viewport [4]int
	status   gl.Enum
	errs     []gl.Enum
	nextObj  uint
	pixel    byte
}

func newFakeFuncs() *fakeFuncs {
	return &fakeFuncs{
		version: "2.1 Mesa 23.2.1",
		ints: map[gl.Enum]int{
			gl.MAX_COLOR_ATTACHMENTS: 8,
			gl.MAX_DRAW_BUFFERS:      8,
			gl.MAX_TEXTURE_SIZE:      4096,
			gl.PACK_ALIGNMENT:        4,
			gl.UNPACK_ALIGNMENT:      4,
		},
		status: gl.FRAMEBUFFER_COMPLETE,
	}
}

func (f *fakeFuncs) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeFuncs) reset() {
	f.calls = nil
}

func (f *fakeFuncs) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.ints[gl.FRAMEBUFFER_BINDING] = int(fb.V)
	f.record("BindFramebuffer(%#x, %d)", uint(target), fb.V)
}

func (f *fakeFuncs) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	f.ints[gl.RENDERBUFFER_BINDING] = int(rb.V)
	f.record("BindRenderbuffer(%d)", rb.V)
}

func (f *fakeFuncs) BindTexture(target gl.Enum, t gl.Texture) {
	f.ints[gl.TEXTURE_BINDING_2D] = int(t.V)
	f.record("BindTexture(%d)", t.V)
}

func (f *fakeFuncs) BlendFunc(sfactor, dfactor gl.Enum) {
	f.record("BlendFunc(%#x, %#x)", uint(sfactor), uint(dfactor))
}

func (f *fakeFuncs) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus")
	return f.status
}

func (f *fakeFuncs) Clear(mask gl.Enum) {
	f.record("Clear(%#x)", uint(mask))
}

func (f *fakeFuncs) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor(%g, %g, %g, %g)", red, green, blue, alpha)
}

func (f *fakeFuncs) ClearDepth(d float32) {
	f.record("ClearDepth(%g)", d)
}

func (f *fakeFuncs) ColorMask(red, green, blue, alpha bool) {
	f.record("ColorMask(%v, %v, %v, %v)", red, green, blue, alpha)
}

func (f *fakeFuncs) newObj() uint {
	f.nextObj++
	return f.nextObj
}

func (f *fakeFuncs) CreateFramebuffer() gl.Framebuffer {
	return gl.Framebuffer{V: f.newObj()}
}

func (f *fakeFuncs) CreateRenderbuffer() gl.Renderbuffer {
	return gl.Renderbuffer{V: f.newObj()}
}

func (f *fakeFuncs) CreateTexture() gl.Texture {
	return gl.Texture{V: f.newObj()}
}

func (f *fakeFuncs) CullFace(mode gl.Enum) {
	f.record("CullFace(%#x)", uint(mode))
}

func (f *fakeFuncs) DeleteFramebuffer(fb gl.Framebuffer) {
	f.record("DeleteFramebuffer(%d)", fb.V)
}

func (f *fakeFuncs) DeleteRenderbuffer(rb gl.Renderbuffer) {
	f.record("DeleteRenderbuffer(%d)", rb.V)
}

func (f *fakeFuncs) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture(%d)", t.V)
}

func (f *fakeFuncs) DepthMask(mask bool) {
	f.record("DepthMask(%v)", mask)
}

func (f *fakeFuncs) Disable(cap gl.Enum) {
	f.record("Disable(%#x)", uint(cap))
}

func (f *fakeFuncs) DrawBuffers(bufs []gl.Enum) {
	f.record("DrawBuffers(%#x)", bufs)
}

func (f *fakeFuncs) Enable(cap gl.Enum) {
	f.record("Enable(%#x)", uint(cap))
}

func (f *fakeFuncs) Flush() {
	f.record("Flush")
}

func (f *fakeFuncs) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	f.record("FramebufferRenderbuffer(%#x, %d)", uint(attachment), rb.V)
}

func (f *fakeFuncs) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.record("FramebufferTexture2D(%#x, %d)", uint(attachment), t.V)
}

func (f *fakeFuncs) GetError() gl.Enum {
	if len(f.errs) == 0 {
		return gl.NO_ERROR
	}
	e := f.errs[0]
	f.errs = f.errs[1:]
	return e
}

func (f *fakeFuncs) GetInteger(pname gl.Enum) int {
	return f.ints[pname]
}

func (f *fakeFuncs) GetInteger4(pname gl.Enum) [4]int {
	if pname == gl.VIEWPORT {
		return f.viewport
	}
	return [4]int{}
}

func (f *fakeFuncs) GetString(pname gl.Enum) string {
	if pname == gl.VERSION {
		return f.version
	}
	return "fake"
}

func (f *fakeFuncs) PixelStorei(pname gl.Enum, param int) {
	f.ints[pname] = param
	f.record("PixelStorei(%#x, %d)", uint(pname), param)
}

func (f *fakeFuncs) ReadBuffer(src gl.Enum) {
	f.ints[gl.READ_BUFFER] = int(src)
	f.record("ReadBuffer(%#x)", uint(src))
}

func (f *fakeFuncs) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	for i := range data[:width*height*4] {
		data[i] = f.pixel
	}
	f.record("ReadPixels(%d, %d, %d, %d)", x, y, width, height)
}

func (f *fakeFuncs) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	f.record("RenderbufferStorage(%#x, %d, %d)", uint(internalformat), width, height)
}

func (f *fakeFuncs) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum) {
	f.record("TexImage2D(%#x, %d, %d, %#x, %#x)", uint(internalFormat), width, height, uint(format), uint(ty))
}

func (f *fakeFuncs) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri(%#x, %#x)", uint(pname), param)
}

func (f *fakeFuncs) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexSubImage2D(%d, %d, %d bytes)", width, height, len(data))
}

func (f *fakeFuncs) Viewport(x, y, width, height int) {
	f.viewport = [4]int{x, y, width, height}
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

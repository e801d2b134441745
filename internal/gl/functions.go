// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the subset of OpenGL entry points used by the
// framebuffer backend. Implementations must be called with a current
// context on the thread that owns it.
type Functions interface {
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	BindTexture(target Enum, t Texture)
	BlendFunc(sfactor, dfactor Enum)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepth(d float32)
	ColorMask(red, green, blue, alpha bool)
	CreateFramebuffer() Framebuffer
	CreateRenderbuffer() Renderbuffer
	CreateTexture() Texture
	CullFace(mode Enum)
	DeleteFramebuffer(fb Framebuffer)
	DeleteRenderbuffer(rb Renderbuffer)
	DeleteTexture(t Texture)
	DepthMask(mask bool)
	Disable(cap Enum)
	DrawBuffers(bufs []Enum)
	Enable(cap Enum)
	Flush()
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, rb Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	GetError() Enum
	GetInteger(pname Enum) int
	GetInteger4(pname Enum) [4]int
	GetString(pname Enum) string
	PixelStorei(pname Enum, param int)
	ReadBuffer(src Enum)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	RenderbufferStorage(target, internalformat Enum, width, height int)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum)
	TexParameteri(target, pname Enum, param int)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte)
	Viewport(x, y, width, height int)
}

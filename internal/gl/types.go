// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Framebuffer  struct{ V uint }
	Renderbuffer struct{ V uint }
	Texture      struct{ V uint }
)

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (r Renderbuffer) Valid() bool {
	return r.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

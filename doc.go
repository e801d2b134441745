// SPDX-License-Identifier: Unlicense OR MIT

/*
Package fbo renders into off-screen framebuffers.

A RenderTarget owns a set of output textures that share one sampling
and storage format, plus an optional depth buffer. A Pass binds a
RenderTarget as the drawing destination, declares its textures as
simultaneous outputs (texture i at color slot i) and sets the viewport
to the target's extent. End restores the default framebuffer and the
viewport that was current when the pass began.

	ctx := fbo.NewContext(dev)
	rt, err := ctx.NewRenderTarget(fbo.Config{Attachments: 2, Texture: props})
	...
	p, err := ctx.Begin(rt)
	if err != nil {
		return err
	}
	p.SetClearColor(0, 0, 0, 1)
	p.Clear()
	p.AlphaBlending()
	// draw
	if err := p.End(); err != nil {
		return err
	}

Only one Pass may be open per Context. End is never implicit: a
Context refuses to Release while a Pass is open.

A zero Width or Height in Config means the extent is taken from the
viewport current at the first Begin; the target's textures are
allocated at that point.
*/
package fbo

// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"github.com/glscope/fbo/driver"
)

// Context owns a driver.Device and tracks the render pass open on it.
// A Context is not safe for concurrent use; like the underlying
// graphics context it belongs to one thread.
type Context struct {
	dev    driver.Device
	active *Pass
}

// NewContext returns a Context rendering through dev. The Context takes
// ownership of dev.
func NewContext(dev driver.Device) *Context {
	Logger().Debug("fbo: context created", "max_color_attachments", dev.Caps().MaxColorAttachments)
	return &Context{dev: dev}
}

// Device returns the underlying device, or nil after Release.
func (c *Context) Device() driver.Device {
	return c.dev
}

// Active returns the open pass, or nil.
func (c *Context) Active() *Pass {
	return c.active
}

// Release releases the device. It fails with ErrPassActive, and
// releases nothing, while a pass is open: End is never called on the
// caller's behalf.
func (c *Context) Release() error {
	if c.active != nil {
		Logger().Warn("fbo: context released with an active pass")
		return ErrPassActive
	}
	if c.dev != nil {
		c.dev.Release()
		c.dev = nil
	}
	return nil
}

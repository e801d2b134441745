// SPDX-License-Identifier: Unlicense OR MIT

// Package headless provides an fbo.Context backed by an invisible GLFW
// window, for rendering without a display surface.
package headless

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glscope/fbo"
	"github.com/glscope/fbo/internal/gl"
	"github.com/glscope/fbo/opengl"
)

// Window is a hidden window whose OpenGL context drives an fbo.Context.
// All rendering happens on a dedicated thread; use Do to run code there.
type Window struct {
	size  image.Point
	win   *glfw.Window
	ctx   *fbo.Context
	calls chan func()
	done  chan struct{}
}

var (
	glfwMu   sync.Mutex
	glfwRefs int
)

// acquireGLFW initializes GLFW for the first live window.
func acquireGLFW() error {
	glfwMu.Lock()
	defer glfwMu.Unlock()
	if glfwRefs == 0 {
		if err := glfw.Init(); err != nil {
			return fmt.Errorf("headless: glfw: %w", err)
		}
	}
	glfwRefs++
	return nil
}

func releaseGLFW() {
	glfwMu.Lock()
	defer glfwMu.Unlock()
	glfwRefs--
	if glfwRefs == 0 {
		glfw.Terminate()
	}
}

// NewWindow creates a hidden window with a width by height default
// framebuffer. The viewport starts out covering it.
func NewWindow(width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("headless: invalid size %dx%d", width, height)
	}
	w := &Window{
		size:  image.Point{X: width, Y: height},
		calls: make(chan func()),
		done:  make(chan struct{}),
	}
	errCh := make(chan error)
	go w.run(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) run(errCh chan<- error) {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	if err := acquireGLFW(); err != nil {
		errCh <- err
		return
	}
	defer releaseGLFW()
	if err := w.init(); err != nil {
		w.destroy()
		errCh <- err
		return
	}
	errCh <- nil
	for f := range w.calls {
		f()
	}
	w.destroy()
}

func (w *Window) init() error {
	glfwMu.Lock()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(w.size.X, w.size.Y, "fbo", nil, nil)
	glfwMu.Unlock()
	if err != nil {
		return fmt.Errorf("headless: create window: %w", err)
	}
	w.win = win
	win.MakeContextCurrent()
	funcs, err := gl.NewFunctions()
	if err != nil {
		return err
	}
	b, err := opengl.NewBackend(funcs)
	if err != nil {
		return err
	}
	b.SetViewport(image.Rectangle{Max: w.size})
	// Note that the fbo.Context takes ownership of b.
	w.ctx = fbo.NewContext(b)
	return nil
}

func (w *Window) destroy() {
	if w.win == nil {
		return
	}
	glfw.DetachCurrentContext()
	glfwMu.Lock()
	w.win.Destroy()
	glfwMu.Unlock()
	w.win = nil
}

// Size returns the size of the window's default framebuffer.
func (w *Window) Size() image.Point {
	return w.size
}

// Do runs f on the rendering thread with the window's context current
// and returns its error.
func (w *Window) Do(f func(ctx *fbo.Context) error) error {
	if w.calls == nil {
		return fbo.ErrReleased
	}
	errCh := make(chan error)
	w.calls <- func() {
		errCh <- f(w.ctx)
	}
	return <-errCh
}

// Release releases the fbo.Context and destroys the window. It fails,
// leaving the window usable, if a render pass is still open.
func (w *Window) Release() error {
	if w.calls == nil {
		return nil
	}
	err := w.Do(func(ctx *fbo.Context) error {
		return ctx.Release()
	})
	if errors.Is(err, fbo.ErrPassActive) {
		return err
	}
	close(w.calls)
	<-w.done
	w.calls = nil
	return err
}

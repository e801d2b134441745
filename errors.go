// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import "errors"

var (
	// ErrReentrant is returned by Begin while another pass of the same
	// Context is open.
	ErrReentrant = errors.New("fbo: a render pass is already active, call End first")
	// ErrIncompleteBinding is wrapped by Begin when the backend reports
	// the target's framebuffer incomplete.
	ErrIncompleteBinding = errors.New("fbo: incomplete framebuffer binding")
	// ErrPassEnded is returned by End on a pass that has already ended.
	ErrPassEnded = errors.New("fbo: render pass already ended")
	// ErrPassActive is returned by Context.Release while a pass is open.
	ErrPassActive = errors.New("fbo: render pass still active, call End first")
	// ErrTargetInUse is returned when releasing a target bound by an open pass.
	ErrTargetInUse = errors.New("fbo: render target is bound by an active pass")
	// ErrTooManyAttachments is wrapped when a target asks for more color
	// slots than MaxAttachments or the backend supports.
	ErrTooManyAttachments = errors.New("fbo: too many attachments")
	// ErrReleased is returned when using a released Context or RenderTarget.
	ErrReleased = errors.New("fbo: use of released resource")
)

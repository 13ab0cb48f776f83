// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"fmt"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// NewGPU creates a canvas that draws into a ggcanvas.Canvas bound to a
// gogpu window. The provider usually comes from
// gogpu.App.GPUContextProvider().
//
// Every paint call marks the canvas dirty; call Flush once per frame to
// upload it.
func NewGPU(provider gpucontext.DeviceProvider, width, height int, opts ...Option) (*Canvas, error) {
	gc, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: %w", err)
	}
	return newCanvas(gc.Context(), gc, opts), nil
}

// Flush uploads the pixels of a GPU canvas if they changed and returns
// the texture. It returns nil for software canvases.
func (c *Canvas) Flush() (any, error) {
	if c.gpu == nil {
		return nil, nil
	}
	return c.gpu.Flush()
}

// GPU returns the ggcanvas.Canvas of a NewGPU canvas, or nil.
func (c *Canvas) GPU() *ggcanvas.Canvas { return c.gpu }

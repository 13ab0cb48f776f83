// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import "errors"

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ggsurface: invalid dimensions")

	// ErrClosed is returned when drawing on a closed canvas.
	ErrClosed = errors.New("ggsurface: canvas is closed")

	// ErrNoFace is returned by FillText when no face can be resolved for
	// the current font.
	ErrNoFace = errors.New("ggsurface: no font face")

	// ErrEmptyFontData is returned when registering a font without data.
	ErrEmptyFontData = errors.New("ggsurface: empty font data")
)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/meter"
)

// HarfbuzzShaper keeps internal buffers and is not safe for concurrent
// use, so instances are pooled.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// shapedWidth returns the advance width of s shaped with HarfBuzz.
func shapedWidth(f *font.Font, s string, size float64) float64 {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	var w fixed.Int26_6
	for _, g := range out.Glyphs {
		w += g.Advance
	}
	return float64(w) / 64
}

// scriptOf detects the script from the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// measure computes meter text metrics for s. Ascent and descent come
// from the glyph bounding boxes actually present in s.
func measure(res resolved, s string, shape bool) meter.TextMetrics {
	if s == "" {
		return meter.TextMetrics{}
	}

	var m meter.TextMetrics
	if shape && res.typeface.shaped != nil {
		m.Width = shapedWidth(res.typeface.shaped, s, res.face.Size())
	} else {
		m.Width = res.face.Advance(s)
	}

	// Glyph bounds are y-down: MinY is negative above the baseline.
	for g := range res.face.Glyphs(s) {
		m.Ascent = max(m.Ascent, -g.Bounds.MinY)
		m.Descent = max(m.Descent, g.Bounds.MaxY)
	}
	return m
}

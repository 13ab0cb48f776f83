// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynemeter

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/meter"
	"github.com/gogpu/meter/surface/ggsurface"
)

// animationDuration covers every frame of a transition, the final one
// included.
const animationDuration = meter.TransitionDuration + meter.FrameInterval

// Widget is a fyne widget showing a meter.
//
// All methods are safe for concurrent use.
type Widget struct {
	widget.BaseWidget

	mu      sync.Mutex
	surface *ggsurface.Canvas
	meter   *meter.Meter
	image   *canvas.Image

	anim    *fyne.Animation
	elapsed time.Duration
}

// New creates a widget with the scale ceiling maxValue. size is the
// initial pixel size of the backing canvas and the widget's minimum
// size.
func New(maxValue float64, size fyne.Size, opts ...meter.Option) (*Widget, error) {
	s, err := ggsurface.New(int(size.Width), int(size.Height))
	if err != nil {
		return nil, fmt.Errorf("fynemeter: %w", err)
	}
	m, err := meter.New(s, maxValue, opts...)
	if err != nil {
		s.Close()
		return nil, err
	}

	w := &Widget{
		surface: s,
		meter:   m,
		image:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	w.image.FillMode = canvas.ImageFillContain
	w.image.SetMinSize(size)
	w.ExtendBaseWidget(w)

	w.mu.Lock()
	w.redrawLocked()
	w.mu.Unlock()
	return w, nil
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.image)
}

// SetValue changes the value and animates the arc towards it.
func (w *Widget) SetValue(v float64) {
	w.Update(func(m *meter.Meter) { m.SetValue(v) })
}

// Value returns the current value.
func (w *Widget) Value() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.meter.Value()
}

// Update runs fn on the meter, then redraws and animates. Use it to
// change colors, fonts or the label.
func (w *Widget) Update(fn func(m *meter.Meter)) {
	w.mu.Lock()
	fn(w.meter)
	if err := w.meter.Draw(); err != nil {
		meter.Logger().Warn("fynemeter: draw failed", slog.Any("error", err))
	}
	w.snapshotLocked()
	w.mu.Unlock()

	canvas.Refresh(w.image)
	w.animate()
}

// animate (re)starts the fyne animation that ticks the meter.
func (w *Widget) animate() {
	w.mu.Lock()
	if w.anim != nil {
		w.anim.Stop()
	}
	w.elapsed = 0
	anim := fyne.NewAnimation(animationDuration, w.frame)
	anim.Curve = fyne.AnimationLinear
	w.anim = anim
	w.mu.Unlock()

	anim.Start()
}

// frame is the animation callback; progress runs from 0 to 1.
func (w *Widget) frame(progress float32) {
	w.mu.Lock()
	target := time.Duration(float64(animationDuration) * float64(progress))
	if err := w.meter.Tick(target - w.elapsed); err != nil {
		meter.Logger().Warn("fynemeter: frame failed", slog.Any("error", err))
	}
	w.elapsed = target
	if progress >= 1 {
		w.meter.Finish()
	}
	w.snapshotLocked()
	w.mu.Unlock()

	canvas.Refresh(w.image)
}

// Resize resizes the widget and its backing canvas, redrawing the meter
// in its final state.
func (w *Widget) Resize(size fyne.Size) {
	w.BaseWidget.Resize(size)

	pw, ph := int(size.Width), int(size.Height)
	w.mu.Lock()
	if pw <= 0 || ph <= 0 || (pw == w.surface.Width() && ph == w.surface.Height()) {
		w.mu.Unlock()
		return
	}
	if err := w.surface.Resize(pw, ph); err != nil {
		meter.Logger().Warn("fynemeter: resize failed", slog.Any("error", err))
	}
	w.redrawLocked()
	w.mu.Unlock()

	canvas.Refresh(w.image)
}

// redrawLocked paints the meter at its end state without animating.
func (w *Widget) redrawLocked() {
	if err := w.meter.Draw(); err != nil {
		meter.Logger().Warn("fynemeter: draw failed", slog.Any("error", err))
	}
	w.meter.Finish()
	w.snapshotLocked()
}

// snapshotLocked hands a copy of the pixels to the canvas.Image.
func (w *Widget) snapshotLocked() {
	w.image.Image = w.surface.Image()
}

// Close stops the animation and releases the backing canvas.
func (w *Widget) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.anim != nil {
		w.anim.Stop()
		w.anim = nil
	}
	return w.surface.Close()
}

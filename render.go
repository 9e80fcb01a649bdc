// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/aclements/go-moremath/scale"
)

// Axis is one vertical feature axis: the feature it displays, its
// horizontal plot-space position, and its tick values in raw units.
type Axis struct {
	Feature Feature
	X       float32
	Ticks   []float64
}

// Frame is one fully built render pass: the resolved configuration,
// plot bounds, per-feature axes, row polylines, and the color bar
// when the legend is visible (nil otherwise). A Frame is immutable
// once built; live updates produce a new Frame.
type Frame struct {
	Config    Config
	Size      math32.Vector2
	Bounds    Bounds
	Axes      []Axis
	Polylines []Polyline
	ColorBar  *ColorBar
}

// Renderer is the external drawing collaborator. The frame walk
// clears the target first and rebuilds every element; there is no
// incremental diffing between frames.
type Renderer interface {
	// Clear clears the drawing target before a full redraw.
	Clear(size math32.Vector2)

	// Title draws the plot title, horizontally centered in the
	// margin above the plot area.
	Title(text string, bounds Bounds)

	// Axis draws one vertical feature axis with its ticks and label.
	Axis(ax Axis, bounds Bounds)

	// Polyline draws one row polyline in its mapped color.
	Polyline(pl Polyline)

	// ColorBar draws the color legend beside the plot area.
	ColorBar(cb ColorBar, bounds Bounds)

	// Done flushes the frame after all elements are drawn.
	Done()
}

// Render draws the frame through the given renderer: clear, title,
// axes, polylines, then the color bar when visible.
func (fr *Frame) Render(r Renderer) {
	r.Clear(fr.Size)
	if fr.Config.Title != "" {
		r.Title(fr.Config.Title, fr.Bounds)
	}
	for _, ax := range fr.Axes {
		r.Axis(ax, fr.Bounds)
	}
	for i := range fr.Polylines {
		r.Polyline(fr.Polylines[i])
	}
	if fr.ColorBar != nil {
		r.ColorBar(*fr.ColorBar, fr.Bounds)
	}
	r.Done()
}

// axisTicks is the maximum number of major ticks per axis.
const axisTicks = 5

// linearTicks returns "nice" tick values within the given range, at
// the lowest tick level that yields at most maxTicks major ticks.
// A degenerate range gets its single value as the only tick.
func linearTicks(rng minmax.F64, maxTicks int) []float64 {
	sc := scale.Linear{Min: rng.Min, Max: rng.Max}
	major, _ := sc.Ticks(scale.TickOptions{Max: maxTicks})
	if len(major) == 0 {
		return []float64{rng.Min, rng.Max}
	}
	return major
}

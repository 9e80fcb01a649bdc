// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg renders parcoords frames to SVG, using ajstarks/svgo.
package svg

import (
	"fmt"
	"io"
	"strconv"

	svgo "github.com/ajstarks/svgo"

	"cogentcore.org/core/math32"
	"github.com/vizgo/parcoords"
)

// Renderer implements [parcoords.Renderer], writing one SVG document
// per rendered frame. Plot-space Y increases upward, so all vertical
// coordinates are flipped on output.
type Renderer struct {
	canvas *svgo.SVG
	size   math32.Vector2
}

var _ parcoords.Renderer = (*Renderer)(nil)

// New returns a Renderer writing SVG to the given writer.
func New(w io.Writer) *Renderer {
	return &Renderer{canvas: svgo.New(w)}
}

func (r *Renderer) flipY(y float32) int {
	return int(r.size.Y - y)
}

func (r *Renderer) Clear(size math32.Vector2) {
	r.size = size
	r.canvas.Start(int(size.X), int(size.Y))
	r.canvas.Rect(0, 0, int(size.X), int(size.Y), "fill:white")
}

func (r *Renderer) Title(text string, bounds parcoords.Bounds) {
	// baseline sits inside the margin above the plot area
	top := r.size.Y - (bounds.Offset + bounds.Height)
	ty := int(0.6 * top)
	if ty < 12 {
		ty = 12
	}
	r.canvas.Text(int(r.size.X/2), ty, text,
		"text-anchor:middle;font-size:16px;fill:black")
}

func (r *Renderer) Axis(ax parcoords.Axis, bounds parcoords.Bounds) {
	x := int(ax.X)
	yb := r.flipY(bounds.Offset)
	yt := r.flipY(bounds.Offset + bounds.Height)
	r.canvas.Line(x, yt, x, yb, "stroke:black;stroke-width:1")
	for _, tv := range ax.Ticks {
		ty := r.flipY(bounds.Y(tv, ax.Feature.Range))
		r.canvas.Line(x-3, ty, x+3, ty, "stroke:black;stroke-width:1")
		r.canvas.Text(x-6, ty+3, strconv.FormatFloat(tv, 'g', 4, 64),
			"text-anchor:end;font-size:9px;fill:black")
	}
	r.canvas.Text(x, yb+16, ax.Feature.DisplayLabel(),
		"text-anchor:middle;font-size:11px;fill:black")
}

func (r *Renderer) Polyline(pl parcoords.Polyline) {
	xs := make([]int, len(pl.Points))
	ys := make([]int, len(pl.Points))
	for i, pt := range pl.Points {
		xs[i] = int(pt.X)
		ys[i] = r.flipY(pt.Y)
	}
	style := fmt.Sprintf("fill:none;stroke:#%02x%02x%02x;stroke-width:1.5",
		pl.Color.R, pl.Color.G, pl.Color.B)
	r.canvas.Polyline(xs, ys, style)
}

// colorBarSamples is the number of gradient strip segments.
const colorBarSamples = 64

func (r *Renderer) ColorBar(cb parcoords.ColorBar, bounds parcoords.Bounds) {
	x := int(bounds.Offset + bounds.Width + 0.3*bounds.Offset)
	w := int(0.25 * bounds.Offset)
	if w < 4 {
		w = 4
	}
	seg := bounds.Height / colorBarSamples
	for i := 0; i < colorBarSamples; i++ {
		norm := (float32(i) + 0.5) / colorBarSamples
		c := cb.At(norm)
		y := r.flipY(bounds.Offset + float32(i+1)*seg)
		r.canvas.Rect(x, y, w, int(seg)+1,
			fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B))
	}
	yb := r.flipY(bounds.Offset)
	yt := r.flipY(bounds.Offset + bounds.Height)
	r.canvas.Text(x+w+4, yb, strconv.FormatFloat(cb.Range.Min, 'g', 4, 64),
		"font-size:9px;fill:black")
	r.canvas.Text(x+w+4, yt+8, strconv.FormatFloat(cb.Range.Max, 'g', 4, 64),
		"font-size:9px;fill:black")
	r.canvas.Text(x+w/2, yb+16, cb.Label,
		"text-anchor:middle;font-size:11px;fill:black")
}

func (r *Renderer) Done() {
	r.canvas.End()
}

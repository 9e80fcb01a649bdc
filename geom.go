// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Point is a 2D coordinate in plot space. The Y axis increases
// upward; renderers with a downward Y axis flip on output.
type Point = math32.Vector2

// Bounds is the plot-space extent of the drawing area: axes are
// spaced across Width, values span Height, and Offset is the margin
// from the canvas origin on both dimensions.
type Bounds struct {
	Width  float32
	Height float32
	Offset float32
}

// offsetFrac is the fraction of the smaller canvas dimension used
// as the margin around the plot area. Presentation constant.
const offsetFrac = 0.125

// NewBounds returns the plot bounds for a canvas of the given size,
// with a margin of [offsetFrac] of the smaller dimension on all sides.
func NewBounds(size math32.Vector2) Bounds {
	off := offsetFrac * math32.Min(size.X, size.Y)
	return Bounds{Width: size.X - 2*off, Height: size.Y - 2*off, Offset: off}
}

// X returns the horizontal position of the axis for the feature at
// the given index, with numFeatures axes evenly spaced across the
// width. A single feature is placed at the horizontal center.
func (bd Bounds) X(featureIndex, numFeatures int) float32 {
	if numFeatures <= 1 {
		return bd.Offset + 0.5*bd.Width
	}
	return bd.Offset + (float32(featureIndex)/float32(numFeatures-1))*bd.Width
}

// Y returns the vertical position of the given raw value linearly
// rescaled from the given feature range into the vertical extent.
// A degenerate range (min == max) is placed at mid-height.
func (bd Bounds) Y(val float64, rng minmax.F64) float32 {
	norm := 0.5
	if rng.Range() > 0 {
		norm = rng.NormValue(val)
	}
	return bd.Offset + float32(norm)*bd.Height
}

// Point maps one raw value of the feature at the given index into
// a plot-space point.
func (bd Bounds) Point(featureIndex, numFeatures int, val float64, rng minmax.F64) Point {
	return math32.Vec2(bd.X(featureIndex, numFeatures), bd.Y(val, rng))
}

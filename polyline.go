// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"image/color"

	"cogentcore.org/core/math32/minmax"
	"github.com/vizgo/parcoords/table"
)

// Polyline is the plot-space geometry for one data row: an ordered
// sequence of points crossing each displayed axis, optionally
// densified by curve interpolation, tagged with the row's color
// feature value and its mapped color.
type Polyline struct {
	// Row is the source row index in the table.
	Row int

	// Points are the plot-space points, in axis order.
	Points []Point

	// ColorValue is the raw color-feature value for this row.
	ColorValue float64

	// Color is ColorValue mapped through the colormap.
	Color color.RGBA
}

// rowPoints emits the points of one row's polyline. The two variants
// (straight, curved) are selected once per build by the curve flag,
// not re-evaluated per row.
type rowPoints func(row int) []Point

// lineBuilder builds row polylines from mapped per-feature points.
type lineBuilder struct {
	cols   []table.Values
	ranges []minmax.F64
	bounds Bounds
	steps  int
}

func newLineBuilder(dt *table.Table, feats []Feature, bounds Bounds, steps int) *lineBuilder {
	lb := &lineBuilder{bounds: bounds, steps: steps}
	lb.cols = make([]table.Values, len(feats))
	lb.ranges = make([]minmax.F64, len(feats))
	for i, ft := range feats {
		lb.cols[i] = dt.Column(ft.Name)
		lb.ranges[i] = ft.Range
	}
	return lb
}

// axisPoints maps the row's value at each displayed feature to its
// plot-space point, one per axis.
func (lb *lineBuilder) axisPoints(row int) []Point {
	nf := len(lb.cols)
	pts := make([]Point, nf)
	for j := range lb.cols {
		pts[j] = lb.bounds.Point(j, nf, lb.cols[j][row], lb.ranges[j])
	}
	return pts
}

// straightRow emits exactly one point per feature.
func (lb *lineBuilder) straightRow(row int) []Point {
	return lb.axisPoints(row)
}

// curvedRow emits the first axis point followed by the interpolated
// points of each consecutive axis pair, (nf-1)*steps + 1 in total.
func (lb *lineBuilder) curvedRow(row int) []Point {
	axis := lb.axisPoints(row)
	pts := make([]Point, 0, (len(axis)-1)*lb.steps+1)
	pts = append(pts, axis[0])
	for j := 1; j < len(axis); j++ {
		for pt := range curveSegment(axis[j-1], axis[j], lb.steps) {
			pts = append(pts, pt)
		}
	}
	return pts
}

// variant returns the row point emitter for the given curve flag.
func (lb *lineBuilder) variant(curve bool) rowPoints {
	if curve {
		return lb.curvedRow
	}
	return lb.straightRow
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"iter"

	"cogentcore.org/core/math32"
)

// curveSegment returns a lazy, finite, restartable sequence of the
// interpolated points between two consecutive mapped points, sampled
// at the given number of subdivisions. The starting point p0 itself
// is not emitted; the final emitted point is exactly p1.
//
// For a sample x in (x0, x1], the blend is an ease-in-ease-out
// cosine: t = (x-x0)/(x1-x0) * pi; s = 0.5 - 0.5*cos(t);
// y = y0 + s*(y1-y0). s rises monotonically 0 to 1, so the curve
// passes through both endpoints and has zero slope at each axis.
func curveSegment(p0, p1 Point, steps int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if p1.X == p0.X || steps <= 1 {
			yield(p1)
			return
		}
		dx := (p1.X - p0.X) / float32(steps)
		for i := 1; i <= steps; i++ {
			x := p0.X + float32(i)*dx
			if i == steps {
				x = p1.X // no accumulated float error at the axis
			}
			t := (x - p0.X) / (p1.X - p0.X) * math32.Pi
			s := 0.5 - 0.5*math32.Cos(t)
			y := p0.Y + s*(p1.Y-p0.Y)
			if !yield(math32.Vec2(x, y)) {
				return
			}
		}
	}
}

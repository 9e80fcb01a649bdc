// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(p0, p1 Point, steps int) []Point {
	var pts []Point
	for pt := range curveSegment(p0, p1, steps) {
		pts = append(pts, pt)
	}
	return pts
}

func TestCurveSegmentEndpoints(t *testing.T) {
	p0 := math32.Vec2(0, 0)
	p1 := math32.Vec2(10, 10)
	pts := collect(p0, p1, 30)
	require.Len(t, pts, 30)
	assert.Equal(t, p1, pts[len(pts)-1])
}

func TestCurveSegmentMidpoint(t *testing.T) {
	// cosine ease is symmetric: the midpoint in x maps to the midpoint in y
	pts := collect(math32.Vec2(0, 0), math32.Vec2(10, 10), 30)
	mid := pts[0]
	for _, pt := range pts {
		if math32.Abs(pt.X-5) < math32.Abs(mid.X-5) {
			mid = pt
		}
	}
	assert.InDelta(t, 5, mid.X, 1e-4)
	assert.InDelta(t, 5, mid.Y, 1e-4)
}

func TestCurveSegmentMonotonic(t *testing.T) {
	pts := collect(math32.Vec2(0, 3), math32.Vec2(10, 42), 30)
	prev := float32(3)
	for _, pt := range pts {
		assert.GreaterOrEqual(t, pt.Y, prev)
		prev = pt.Y
	}
	assert.Equal(t, float32(42), pts[len(pts)-1].Y)
}

func TestCurveSegmentRestartable(t *testing.T) {
	seq := curveSegment(math32.Vec2(0, 0), math32.Vec2(10, 10), 10)
	var a, b []Point
	for pt := range seq {
		a = append(a, pt)
	}
	for pt := range seq {
		b = append(b, pt)
	}
	assert.Equal(t, a, b)
}

func TestCurveSegmentDegenerate(t *testing.T) {
	// coincident axis positions emit just the endpoint
	pts := collect(math32.Vec2(5, 0), math32.Vec2(5, 10), 30)
	require.Len(t, pts, 1)
	assert.Equal(t, math32.Vec2(5, 10), pts[0])
}

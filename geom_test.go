// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestBoundsX(t *testing.T) {
	bd := Bounds{Width: 90, Height: 100, Offset: 5}
	assert.Equal(t, float32(5), bd.X(0, 3))
	assert.Equal(t, float32(50), bd.X(1, 3))
	assert.Equal(t, float32(95), bd.X(2, 3))

	// single feature is centered
	assert.Equal(t, float32(50), bd.X(0, 1))
}

func TestBoundsY(t *testing.T) {
	bd := Bounds{Width: 90, Height: 100, Offset: 5}
	rng := minmax.F64{Min: 0, Max: 10}
	assert.Equal(t, float32(5), bd.Y(0, rng))
	assert.Equal(t, float32(55), bd.Y(5, rng))
	assert.Equal(t, float32(105), bd.Y(10, rng))

	// degenerate range falls back to mid-height
	flat := minmax.F64{Min: 3, Max: 3}
	assert.Equal(t, float32(55), bd.Y(3, flat))
}

func TestNewBounds(t *testing.T) {
	bd := NewBounds(math32.Vec2(640, 480))
	assert.Equal(t, float32(60), bd.Offset)
	assert.Equal(t, float32(520), bd.Width)
	assert.Equal(t, float32(360), bd.Height)
}

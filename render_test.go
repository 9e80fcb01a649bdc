// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder records the order of renderer calls.
type recorder struct {
	calls []string
	axes  []Axis
	lines []Polyline
	bar   *ColorBar
	title string
}

func (r *recorder) Clear(size math32.Vector2) {
	r.calls = append(r.calls, "clear")
}

func (r *recorder) Title(text string, bounds Bounds) {
	r.calls = append(r.calls, "title")
	r.title = text
}

func (r *recorder) Axis(ax Axis, bounds Bounds) {
	r.calls = append(r.calls, "axis")
	r.axes = append(r.axes, ax)
}

func (r *recorder) Polyline(pl Polyline) {
	r.calls = append(r.calls, "polyline")
	r.lines = append(r.lines, pl)
}

func (r *recorder) ColorBar(cb ColorBar, bounds Bounds) {
	r.calls = append(r.calls, "colorbar")
	r.bar = &cb
}

func (r *recorder) Done() {
	r.calls = append(r.calls, "done")
}

func TestFrameRender(t *testing.T) {
	pc := New(bodyTable())
	pc.Options.Title = "body"
	pc.Options.FeatureSelection = []string{"height", "weight"}
	pc.Options.ColorFeature = "age"
	fr, err := pc.Build()
	require.NoError(t, err)

	rec := &recorder{}
	fr.Render(rec)

	assert.Equal(t, []string{"clear", "title",
		"axis", "axis",
		"polyline", "polyline", "polyline",
		"colorbar", "done"}, rec.calls)
	assert.Equal(t, "body", rec.title)
	require.NotNil(t, rec.bar)
	assert.Equal(t, "age", rec.bar.Label)
}

func TestLinearTicks(t *testing.T) {
	ts := linearTicks(minmax.F64{Min: 0, Max: 100}, 5)
	assert.Equal(t, []float64{0, 50, 100}, ts)

	// degenerate range has a single tick
	assert.Equal(t, []float64{3}, linearTicks(minmax.F64{Min: 3, Max: 3}, 5))

	// small fractional ranges still get ticks
	ts = linearTicks(minmax.F64{Min: 0.1, Max: 0.3}, 5)
	require.NotEmpty(t, ts)
	assert.LessOrEqual(t, len(ts), 5)
	for i, tv := range ts {
		assert.InDelta(t, 0.2, tv, 0.1+1e-9) // within the range
		if i > 0 {
			assert.Greater(t, tv, ts[i-1])
		}
	}
}

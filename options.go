// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"cogentcore.org/core/base/option"
)

// Options are the raw user options for a parallel-coordinates plot.
// They are resolved into an immutable [Config] at the start of each
// build; see [ParallelCoords.Build].
type Options struct {

	// optional title at top of plot
	Title string

	// name of the colormap used to color each row by its color
	// feature value; see colors/colormap for available maps
	ColorMap string `default:"Viridis"`

	// optional column whose values determine each row's line color.
	// It must exist in the table but need not be displayed.
	// If empty, the last selected (or last table) column is used.
	ColorFeature string

	// optional display labels for the axes, in the same order as the
	// displayed features; if non-nil, must match their number.
	// If nil, column names are used.
	FeatureLabels []string

	// optional ordered subset of columns to display, one axis per
	// entry in the given order. If nil, all columns are displayed
	// in table order.
	FeatureSelection []string

	// whether to connect consecutive axes with a cosine-eased curve
	// instead of a straight segment
	Curve bool

	// number of interpolation subdivisions per axis pair in curve mode
	CurveSteps int `default:"30"`

	// whether to rescale each column to the unit interval before mapping
	Normalize bool

	// whether to show the color legend. If unset, the legend is shown
	// exactly when the color feature is not among the displayed features.
	ShowColorLegend option.Option[bool]
}

// Defaults sets default values for unset options.
func (po *Options) Defaults() {
	if po.ColorMap == "" {
		po.ColorMap = "Viridis"
	}
	if po.CurveSteps <= 0 {
		po.CurveSteps = 30
	}
}

// Stylers is a list of styling functions applied in order to the
// Options at the start of each build, allowing persistent option
// overrides independent of the stored Options value.
type Stylers []func(po *Options)

// Add adds a styling function.
func (st *Stylers) Add(f func(po *Options)) {
	*st = append(*st, f)
}

// Run applies the stylers to the given options.
func (st *Stylers) Run(po *Options) {
	for _, f := range *st {
		f(po)
	}
}

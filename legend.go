// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"image/color"

	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32/minmax"
)

// ColorBar is the color legend data handed to the renderer:
// the color feature's label and value range, and the colormap
// mapping normalized values to colors.
type ColorBar struct {
	// Label is the color feature name.
	Label string

	// Range is the color feature's raw value range.
	Range minmax.F64

	// Map is the colormap for the bar gradient.
	Map *colormap.Map
}

// At returns the color at the given normalized 0..1 position
// along the bar.
func (cb *ColorBar) At(norm float32) color.RGBA {
	return cb.Map.Map(norm)
}

// mapName returns the colormap of the given name, falling back to
// the ColdHot standard map if the name is not a known map.
func mapByName(name string) *colormap.Map {
	if cm, ok := colormap.AvailableMaps[name]; ok {
		return cm
	}
	return colormap.AvailableMaps["ColdHot"]
}

// rowColor maps one raw color-feature value through the colormap,
// normalized within the color range. A degenerate color range maps
// every row to the low end of the map.
func rowColor(cm *colormap.Map, val float64, rng minmax.F64) color.RGBA {
	norm := 0.0
	if rng.Range() > 0 {
		norm = rng.NormValue(val)
	}
	return cm.Map(float32(norm))
}

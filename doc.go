// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package parcoords implements a parallel-coordinates plotting recipe:
each row of a [table.Table] is drawn as a polyline crossing one
vertical axis per displayed column, colored by a selected column,
with optional cosine-eased curve interpolation between axes,
optional per-column unit normalization, and an optional color legend.

The recipe is rendering-agnostic: [ParallelCoords.Build] produces a
[Frame] holding resolved configuration, per-feature axes, and colored
polylines in plot space, which is then drawn through the [Renderer]
interface. An SVG backend is provided in renderers/svg.
*/
package parcoords

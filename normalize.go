// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"github.com/vizgo/parcoords/table"
)

// Normalize returns a copy of the table with each column
// independently rescaled to the unit interval:
// (value - min) / (max - min). The input table is not modified.
// A constant column (max == min) is mapped to 0.5 for every row,
// so that its axis positions match the mid-height placement used
// for degenerate ranges in plot-space mapping.
func Normalize(dt *table.Table) *table.Table {
	out := table.New()
	for i, nm := range dt.Columns.Keys {
		col := dt.Columns.Values[i]
		rng := featureRange(col)
		vals := make([]float64, len(col))
		if rng.Range() == 0 {
			for ri := range vals {
				vals[ri] = 0.5
			}
		} else {
			sc := rng.Scale()
			for ri, v := range col {
				vals[ri] = (v - rng.Min) * sc
			}
		}
		out.AddColumn(nm, vals)
	}
	return out
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"slices"

	"cogentcore.org/core/math32/minmax"
	"github.com/aclements/go-moremath/stats"
	"github.com/vizgo/parcoords/table"
)

// Feature is one displayed column: its name, an optional display
// label for the axis, and its resolved data range.
type Feature struct {
	Name  string
	Label string
	Range minmax.F64
}

// DisplayLabel returns the axis label for the feature:
// the Label if set, the column name otherwise.
func (ft *Feature) DisplayLabel() string {
	if ft.Label != "" {
		return ft.Label
	}
	return ft.Name
}

// Ranged returns true if the feature has a non-degenerate range
// (Max > Min). Degenerate features are mapped to the axis midpoint.
func (ft *Feature) Ranged() bool {
	return ft.Range.Range() > 0
}

// featureRange returns the min / max range of the given column.
func featureRange(col table.Values) minmax.F64 {
	mn, mx := stats.Sample{Xs: col}.Bounds()
	return minmax.F64{Min: mn, Max: mx}
}

// resolveFeatures resolves the displayed features (in display order,
// with labels and ranges) and the color column name from the given
// table and options. The legend visibility rule is applied in
// [ParallelCoords.resolve], which calls this.
func resolveFeatures(dt *table.Table, po *Options) ([]Feature, string, error) {
	names := po.FeatureSelection
	if len(names) == 0 {
		names = dt.ColumnNames()
	}
	feats := make([]Feature, 0, len(names))
	for _, nm := range names {
		col := dt.Column(nm)
		if col == nil {
			return nil, "", &UnknownFeatureError{Name: nm}
		}
		feats = append(feats, Feature{Name: nm, Range: featureRange(col)})
	}
	if po.FeatureLabels != nil {
		if len(po.FeatureLabels) != len(feats) {
			return nil, "", ErrLabelCountMismatch
		}
		for i := range feats {
			feats[i].Label = po.FeatureLabels[i]
		}
	}
	colorCol := po.ColorFeature
	switch {
	case colorCol != "":
		if !dt.HasColumn(colorCol) {
			return nil, "", &UnknownFeatureError{Name: colorCol}
		}
	case len(po.FeatureSelection) > 0:
		colorCol = po.FeatureSelection[len(po.FeatureSelection)-1]
	default:
		colorCol = dt.Columns.Keys[dt.NumColumns()-1]
	}
	return feats, colorCol, nil
}

// featuresHave returns true if the given feature list contains
// a feature of the given name.
func featuresHave(feats []Feature, name string) bool {
	return slices.ContainsFunc(feats, func(ft Feature) bool {
		return ft.Name == name
	})
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"github.com/vizgo/parcoords/table"
)

// Validate checks that the given table has the minimal shape and
// completeness required for a parallel-coordinates plot: at least
// 2 columns, at least 2 rows, and no missing (NaN) values.
// It is a pure check with no side effects, and is run first in
// every build, before any rendering state is touched.
func Validate(dt *table.Table) error {
	if dt == nil {
		return ErrNilTable
	}
	if dt.NumColumns() < 2 {
		return ErrInsufficientColumns
	}
	if dt.NumRows() < 2 {
		return ErrInsufficientRows
	}
	for _, col := range dt.Columns.Values {
		if col.HasNaN() {
			return ErrMissingValues
		}
	}
	return nil
}

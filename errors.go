// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrNilTable is returned when the input table is nil.
	ErrNilTable = errors.New("parcoords: nil table")

	// ErrInsufficientColumns is returned when the table has fewer than 2 columns.
	ErrInsufficientColumns = errors.New("parcoords: at least 2 columns are required")

	// ErrInsufficientRows is returned when the table has fewer than 2 rows.
	ErrInsufficientRows = errors.New("parcoords: at least 2 rows are required")

	// ErrMissingValues is returned when any column contains a NaN (missing) value.
	ErrMissingValues = errors.New("parcoords: table contains missing values")

	// ErrLabelCountMismatch is returned when FeatureLabels is set but its
	// length does not match the number of displayed features.
	ErrLabelCountMismatch = errors.New("parcoords: number of feature labels does not match number of displayed features")
)

// UnknownFeatureError is returned when a feature selection or color
// feature names a column that does not exist in the table.
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("parcoords: unknown feature %q", e.Name)
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a minimal column-oriented data table:
// an ordered collection of named float64 columns aligned by a
// common row dimension. It is the input format for the parcoords
// recipe, and supports CSV reading and writing.
package table

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"cogentcore.org/core/base/keylist"
)

// Values is one column of data, a sequence of float64 values.
// Missing values are represented as NaN.
type Values []float64

// Len returns the number of values.
func (vs Values) Len() int { return len(vs) }

// Float1D returns the float64 value at given index.
func (vs Values) Float1D(i int) float64 { return vs[i] }

// String1D returns the string representation of the value at given index.
func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// HasNaN returns true if any value in the column is NaN (missing).
func (vs Values) HasNaN() bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Columns is the ordered, name-indexed list of column data.
type Columns = keylist.List[string, Values]

// Table is a set of named float64 columns aligned by a common
// outermost row dimension. Use [Table.Column] to access columns
// by name, and [Table.AddColumn] to add them; column order is
// the order of addition.
type Table struct {
	// Columns has the list of column data for this table.
	Columns Columns

	// Rows is the common row count shared by all columns.
	// It is set by the first column added.
	Rows int
}

// New returns a new empty Table.
func New() *Table {
	return &Table{}
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.Rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// ColumnNames returns the ordered list of column names.
func (dt *Table) ColumnNames() []string {
	return slices.Clone(dt.Columns.Keys)
}

// Column returns the column with given name, nil if not found.
func (dt *Table) Column(name string) Values {
	vs, ok := dt.Columns.AtTry(name)
	if !ok {
		return nil
	}
	return vs
}

// ColumnTry is a version of [Table.Column] that returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (Values, error) {
	vs, ok := dt.Columns.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("table.Table: column named %q not found", name)
	}
	return vs, nil
}

// HasColumn returns true if the table has a column with given name.
func (dt *Table) HasColumn(name string) bool {
	_, ok := dt.Columns.AtTry(name)
	return ok
}

// AddColumn adds a column of given name and values to the table.
// The first column added sets the table row count; subsequent
// columns must have the same length, and an error is returned
// (and the column not added) if they do not, or if a column of
// the same name already exists.
func (dt *Table) AddColumn(name string, vals []float64) error {
	if dt.Columns.Len() > 0 && len(vals) != dt.Rows {
		return fmt.Errorf("table.Table AddColumn: column %q has %d rows, table has %d", name, len(vals), dt.Rows)
	}
	err := dt.Columns.Add(name, Values(vals))
	if err != nil {
		return err
	}
	dt.Rows = len(vals)
	return nil
}

// Clone returns a complete copy of this table, with all column
// data copied, so that modifications do not affect the original.
func (dt *Table) Clone() *Table {
	cp := New()
	for i, nm := range dt.Columns.Keys {
		cp.AddColumn(nm, slices.Clone(dt.Columns.Values[i]))
	}
	return cp
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Delims are standard delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values.
	Space
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// OpenCSV reads a table from a delimiter-separated file, with the
// first row as column headers. Any existing columns are reset.
func (dt *Table) OpenCSV(filename string, delim Delims) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from a delimiter-separated reader, with the
// first row as column headers. Any existing columns are reset.
// Cells that do not parse as a number are read as NaN (missing).
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	recs, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(recs) < 1 {
		return fmt.Errorf("table.Table ReadCSV: no header row")
	}
	hdrs := recs[0]
	rows := len(recs) - 1
	dt.Columns.Reset()
	dt.Rows = 0
	for ci, nm := range hdrs {
		vals := make([]float64, rows)
		for ri := 0; ri < rows; ri++ {
			v, err := strconv.ParseFloat(recs[ri+1][ci], 64)
			if err != nil {
				v = math.NaN()
			}
			vals[ri] = v
		}
		if err := dt.AddColumn(nm, vals); err != nil {
			return err
		}
	}
	return nil
}

// SaveCSV writes the table to a delimiter-separated file,
// with column names as the first row.
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim)
	bw.Flush()
	return err
}

// WriteCSV writes the table to a delimiter-separated writer,
// with column names as the first row.
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(dt.Columns.Keys); err != nil {
		return err
	}
	nc := dt.NumColumns()
	rec := make([]string, nc)
	for ri := 0; ri < dt.Rows; ri++ {
		for ci := 0; ci < nc; ci++ {
			rec[ci] = dt.Columns.Values[ci].String1D(ri)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vizgo/parcoords/table"
)

func TestNormalize(t *testing.T) {
	dt := table.New()
	dt.AddColumn("a", []float64{10, 20, 30})
	dt.AddColumn("b", []float64{-1, 0, 3})

	nt := Normalize(dt)
	assert.Equal(t, table.Values{0, 0.5, 1}, nt.Column("a"))
	assert.Equal(t, table.Values{0, 0.25, 1}, nt.Column("b"))

	// input is untouched
	assert.Equal(t, table.Values{10, 20, 30}, dt.Column("a"))
}

func TestNormalizeConstantColumn(t *testing.T) {
	dt := table.New()
	dt.AddColumn("a", []float64{7, 7, 7})
	dt.AddColumn("b", []float64{1, 2, 3})

	nt := Normalize(dt)
	assert.Equal(t, table.Values{0.5, 0.5, 0.5}, nt.Column("a"))
}

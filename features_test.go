// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vizgo/parcoords/table"
)

func bodyTable() *table.Table {
	dt := table.New()
	dt.AddColumn("height", []float64{160, 170, 180})
	dt.AddColumn("weight", []float64{60, 70, 80})
	dt.AddColumn("age", []float64{20, 30, 40})
	return dt
}

func featureNames(feats []Feature) []string {
	names := make([]string, len(feats))
	for i, ft := range feats {
		names[i] = ft.Name
	}
	return names
}

func TestResolveFeaturesDefaults(t *testing.T) {
	dt := bodyTable()
	po := &Options{}
	feats, colorCol, err := resolveFeatures(dt, po)
	require.NoError(t, err)
	assert.Equal(t, []string{"height", "weight", "age"}, featureNames(feats))
	assert.Equal(t, "age", colorCol)
	assert.Equal(t, 160.0, feats[0].Range.Min)
	assert.Equal(t, 180.0, feats[0].Range.Max)
}

func TestResolveFeaturesSelection(t *testing.T) {
	dt := bodyTable()
	po := &Options{FeatureSelection: []string{"age", "height"}}
	feats, colorCol, err := resolveFeatures(dt, po)
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "height"}, featureNames(feats))
	assert.Equal(t, "height", colorCol)
}

func TestResolveFeaturesColor(t *testing.T) {
	dt := bodyTable()
	po := &Options{FeatureSelection: []string{"height", "weight"}, ColorFeature: "age"}
	feats, colorCol, err := resolveFeatures(dt, po)
	require.NoError(t, err)
	assert.Equal(t, "age", colorCol)
	assert.False(t, featuresHave(feats, "age"))
}

func TestResolveFeaturesUnknown(t *testing.T) {
	dt := bodyTable()

	_, _, err := resolveFeatures(dt, &Options{FeatureSelection: []string{"height", "shoe"}})
	var ufe *UnknownFeatureError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, "shoe", ufe.Name)

	_, _, err = resolveFeatures(dt, &Options{ColorFeature: "shoe"})
	assert.ErrorAs(t, err, &ufe)
}

func TestResolveFeatureLabels(t *testing.T) {
	dt := bodyTable()

	po := &Options{FeatureSelection: []string{"height", "age"}, FeatureLabels: []string{"H", "A"}}
	feats, _, err := resolveFeatures(dt, po)
	require.NoError(t, err)
	assert.Equal(t, "H", feats[0].DisplayLabel())
	assert.Equal(t, "A", feats[1].DisplayLabel())

	po.FeatureLabels = []string{"H"}
	_, _, err = resolveFeatures(dt, po)
	assert.ErrorIs(t, err, ErrLabelCountMismatch)
}

// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"sync"

	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/vizgo/parcoords/table"
)

// Config is the fully resolved configuration for one build pass,
// derived from the raw [Options] and the table's columns. It is
// immutable for the duration of the pass.
type Config struct {
	// Title is the optional plot title.
	Title string

	// Features are the displayed features in axis order, with
	// resolved labels and raw-data ranges.
	Features []Feature

	// ColorColumn is the resolved color feature name.
	ColorColumn string

	// ColorRange is the color feature's raw value range.
	ColorRange minmax.F64

	// Map is the resolved colormap.
	Map *colormap.Map

	// Curve selects cosine-eased interpolation between axes.
	Curve bool

	// CurveSteps is the subdivisions per axis pair in curve mode.
	CurveSteps int

	// Normalize selects per-column unit rescaling before mapping.
	Normalize bool

	// ShowLegend is the resolved legend visibility.
	ShowLegend bool
}

// ParallelCoords is a parallel-coordinates plot of a [table.Table].
// Set the table, options, and canvas size, then call [ParallelCoords.Build]
// for a one-shot frame, or [ParallelCoords.Update] to also notify
// subscribed listeners, for live-updating hosts.
//
// Builds are serialized: a build in progress completes before the
// next table or option update is applied, and each build runs on a
// consistent snapshot (complete-then-redraw, no preemption).
type ParallelCoords struct {
	// Table is the data to plot. It is never modified; normalization
	// operates on a copy.
	Table *table.Table

	// Options are the raw display options.
	Options Options

	// Stylers are persistent option overrides applied at each build.
	Stylers Stylers

	// Size is the canvas size in plot units.
	Size math32.Vector2

	mu        sync.Mutex
	listeners []func(*Frame)
}

// New returns a new ParallelCoords for the given table,
// with default options and a 640x480 canvas.
func New(dt *table.Table) *ParallelCoords {
	pc := &ParallelCoords{Table: dt}
	pc.Options.Defaults()
	pc.Size = math32.Vec2(640, 480)
	return pc
}

// SetTable sets the table and rebuilds, notifying listeners.
// The error is from the rebuild.
func (pc *ParallelCoords) SetTable(dt *table.Table) error {
	pc.mu.Lock()
	pc.Table = dt
	pc.mu.Unlock()
	_, err := pc.Update()
	return err
}

// SetOptions sets the display options and rebuilds, notifying
// listeners. The error is from the rebuild.
func (pc *ParallelCoords) SetOptions(po Options) error {
	pc.mu.Lock()
	pc.Options = po
	pc.mu.Unlock()
	_, err := pc.Update()
	return err
}

// Styler adds a persistent option override applied at each build,
// and rebuilds, notifying listeners.
func (pc *ParallelCoords) Styler(f func(po *Options)) error {
	pc.mu.Lock()
	pc.Stylers.Add(f)
	pc.mu.Unlock()
	_, err := pc.Update()
	return err
}

// OnUpdate subscribes a listener called with each new frame built
// by [ParallelCoords.Update]. Listeners are called outside the
// build lock, in subscription order.
func (pc *ParallelCoords) OnUpdate(fn func(*Frame)) {
	pc.mu.Lock()
	pc.listeners = append(pc.listeners, fn)
	pc.mu.Unlock()
}

// Update builds a new frame and notifies listeners with it.
// On error no listener is called and no partial frame escapes.
func (pc *ParallelCoords) Update() (*Frame, error) {
	fr, err := pc.Build()
	if err != nil {
		return nil, err
	}
	pc.mu.Lock()
	ls := make([]func(*Frame), len(pc.listeners))
	copy(ls, pc.listeners)
	pc.mu.Unlock()
	for _, fn := range ls {
		fn(fr)
	}
	return fr, nil
}

// Build runs the full pipeline: validate, resolve features and
// options, optionally normalize, map geometry, optionally
// interpolate, and assemble the frame. It fails fast: any
// validation or selection error is returned before any frame
// state is produced.
func (pc *ParallelCoords) Build() (*Frame, error) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if err := Validate(pc.Table); err != nil {
		return nil, err
	}
	cfg, err := pc.resolve()
	if err != nil {
		return nil, err
	}

	dt := pc.Table
	feats := cfg.Features
	if cfg.Normalize {
		dt = Normalize(dt)
		for i := range feats {
			feats[i].Range = featureRange(dt.Column(feats[i].Name))
		}
	}

	bounds := NewBounds(pc.Size)
	fr := &Frame{Config: *cfg, Size: pc.Size, Bounds: bounds}

	fr.Axes = make([]Axis, len(feats))
	for j, ft := range feats {
		fr.Axes[j] = Axis{
			Feature: ft,
			X:       bounds.X(j, len(feats)),
			Ticks:   linearTicks(ft.Range, axisTicks),
		}
	}

	lb := newLineBuilder(dt, feats, bounds, cfg.CurveSteps)
	emit := lb.variant(cfg.Curve)
	colorCol := pc.Table.Column(cfg.ColorColumn) // raw values for color
	fr.Polylines = make([]Polyline, dt.NumRows())
	for row := 0; row < dt.NumRows(); row++ {
		cv := colorCol[row]
		fr.Polylines[row] = Polyline{
			Row:        row,
			Points:     emit(row),
			ColorValue: cv,
			Color:      rowColor(cfg.Map, cv, cfg.ColorRange),
		}
	}

	if cfg.ShowLegend {
		fr.ColorBar = &ColorBar{Label: cfg.ColorColumn, Range: cfg.ColorRange, Map: cfg.Map}
	}
	return fr, nil
}

// resolve derives the immutable per-build Config from the current
// options and table. Caller must hold the build lock.
func (pc *ParallelCoords) resolve() (*Config, error) {
	po := pc.Options
	pc.Stylers.Run(&po)
	po.Defaults()

	feats, colorCol, err := resolveFeatures(pc.Table, &po)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Title:       po.Title,
		Features:    feats,
		ColorColumn: colorCol,
		ColorRange:  featureRange(pc.Table.Column(colorCol)),
		Map:         mapByName(po.ColorMap),
		Curve:       po.Curve,
		CurveSteps:  po.CurveSteps,
		Normalize:   po.Normalize,
	}
	if po.ShowColorLegend.Valid {
		cfg.ShowLegend = po.ShowColorLegend.Value
	} else {
		cfg.ShowLegend = !featuresHave(feats, colorCol)
	}
	return cfg, nil
}

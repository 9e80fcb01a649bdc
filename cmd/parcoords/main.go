// Copyright (c) 2025, The Parcoords Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command parcoords renders a parallel-coordinates plot of a CSV
// file to SVG.
//
// Usage:
//
//	parcoords [flags] data.csv
//
// The first CSV row must name the columns; all cells must be numeric.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vizgo/parcoords"
	"github.com/vizgo/parcoords/renderers/svg"
	"github.com/vizgo/parcoords/table"
)

var (
	out       = flag.String("o", "", "output SVG file (default stdout)")
	title     = flag.String("title", "", "plot title")
	cols      = flag.String("cols", "", "comma-separated columns to display, in order (default all)")
	colorCol  = flag.String("color", "", "column that drives line color (default last displayed)")
	cmap      = flag.String("cmap", "Viridis", "colormap name")
	curve     = flag.Bool("curve", false, "use cosine-eased curves between axes")
	normalize = flag.Bool("normalize", false, "rescale each column to [0,1]")
	legend    = flag.String("legend", "auto", "color legend: on, off, or auto")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: parcoords [flags] data.csv\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	dt := table.New()
	if err := dt.OpenCSV(flag.Arg(0), table.Comma); err != nil {
		fatal(err)
	}

	pc := parcoords.New(dt)
	pc.Options.Title = *title
	pc.Options.ColorMap = *cmap
	pc.Options.ColorFeature = *colorCol
	pc.Options.Curve = *curve
	pc.Options.Normalize = *normalize
	if *cols != "" {
		pc.Options.FeatureSelection = strings.Split(*cols, ",")
	}
	switch *legend {
	case "on":
		pc.Options.ShowColorLegend.Set(true)
	case "off":
		pc.Options.ShowColorLegend.Set(false)
	case "auto":
	default:
		fatal(fmt.Errorf("bad -legend value %q", *legend))
	}

	fr, err := pc.Build()
	if err != nil {
		fatal(err)
	}

	w := os.Stdout
	if *out != "" {
		w, err = os.Create(*out)
		if err != nil {
			fatal(err)
		}
		defer w.Close()
	}
	fr.Render(svg.New(w))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "parcoords:", err)
	os.Exit(1)
}

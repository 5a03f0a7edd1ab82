// SPDX-License-Identifier: MIT

package experiment

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// histogramBins matches the granularity the spectra occupy at N ~ hundreds.
const histogramBins = 100

// writeHistogram renders the overlaid eigenvalue distributions of D and D+V
// to a PNG. Strictly best-effort: callers log and continue on any error.
func writeHistogram(path string, base, perturbed []float64) error {
	pl := plot.New()
	pl.Title.Text = "Eigenvalue distributions (D vs D+V)"
	pl.X.Label.Text = "λ"
	pl.Y.Label.Text = "count"

	hBase, err := plotter.NewHist(plotter.Values(base), histogramBins)
	if err != nil {
		return err
	}
	hBase.FillColor = color.NRGBA{R: 70, G: 130, B: 180, A: 150}

	hPert, err := plotter.NewHist(plotter.Values(perturbed), histogramBins)
	if err != nil {
		return err
	}
	hPert.FillColor = color.NRGBA{R: 220, G: 120, B: 60, A: 100}

	pl.Add(hBase, hPert)

	return pl.Save(6*vg.Inch, 3*vg.Inch, path)
}

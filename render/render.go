// Package render - route and convergence charts.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/tour"
)

var (
	// ErrEmptyRoute indicates a nil tour or a tour without stops.
	ErrEmptyRoute = errors.New("render: empty route")

	// ErrNoData indicates an empty history.
	ErrNoData = errors.New("render: no generations to plot")
)

// Options controls chart size, title and output format.
type Options struct {
	Width  vg.Length
	Height vg.Length
	Title  string
	Format string
}

// DefaultOptions returns a 6×6 inch SVG without a title.
func DefaultOptions() Options {
	return Options{Width: 6 * vg.Inch, Height: 6 * vg.Inch, Format: "svg"}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Format == "" {
		o.Format = d.Format
	}
	return o
}

// Route draws t as a closed polyline. The first city is drawn last again
// so the loop closes, and every city gets a marker.
func Route(w io.Writer, t *tour.Tour, opts Options) error {
	if t == nil || t.Len() == 0 {
		return ErrEmptyRoute
	}
	opts = opts.normalized()

	var (
		n   = t.Len()
		pts = make(plotter.XYs, n+1)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i].X = t.At(i).X
		pts[i].Y = t.At(i).Y
	}
	pts[n] = pts[0]

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%d cities, length %.4f", n, t.Length())
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: route line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.Black

	stops, err := plotter.NewScatter(pts[:n])
	if err != nil {
		return fmt.Errorf("render: route stops: %w", err)
	}
	stops.GlyphStyle.Shape = draw.CircleGlyph{}
	stops.GlyphStyle.Radius = vg.Points(3)
	stops.GlyphStyle.Color = color.RGBA{R: 200, A: 255}

	p.Add(line, stops)
	return save(w, p, opts)
}

// Convergence plots best and mean length per generation.
func Convergence(w io.Writer, history []genetic.Stats, opts Options) error {
	if len(history) == 0 {
		return ErrNoData
	}
	opts = opts.normalized()

	var (
		best = make(plotter.XYs, len(history))
		mean = make(plotter.XYs, len(history))
		i    int
	)
	for i = range history {
		best[i].X = float64(history[i].Generation)
		best[i].Y = history[i].Best
		mean[i].X = float64(history[i].Generation)
		mean[i].Y = history[i].Mean
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Tour length by generation"
	}
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Length"

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("render: best line: %w", err)
	}
	bestLine.LineStyle.Color = color.RGBA{B: 200, A: 255}

	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return fmt.Errorf("render: mean line: %w", err)
	}
	meanLine.LineStyle.Color = color.RGBA{R: 200, G: 120, A: 255}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true

	return save(w, p, opts)
}

func save(w io.Writer, p *plot.Plot, opts Options) error {
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", opts.Format, err)
	}
	return nil
}

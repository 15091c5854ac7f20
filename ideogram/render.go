package ideogram

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Register the figure formats with draw.NewFormattedCanvas.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

var (
	pointColor = color.RGBA{B: 255, A: 255}
	linkColor  = color.RGBA{B: 255, A: 80}
	trackColor = color.Black
)

// Formats lists the figure formats accepted by WriteFigure.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// FormatFromPath returns the figure format implied by the suffix of path,
// e.g. "out/ideogram.svg" -> "svg".
func FormatFromPath(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if f == format {
			return format, nil
		}
	}
	return "", errors.E(errors.Invalid,
		fmt.Sprintf("%s: unsupported figure format %q, must be one of %v", path, format, Formats))
}

// Plot converts the panel to a gonum plot.
func (p *Panel) Plot() (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.XLabel
	plt.Y.Label.Text = p.YLabel

	for _, t := range p.Tracks {
		y := float64(t.Row)
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: float64(t.Length), Y: y}})
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("%s: track %s", p.Name, t.Chrom))
		}
		line.LineStyle.Color = trackColor
		line.LineStyle.Width = vg.Points(1)
		plt.Add(line)
	}
	for _, l := range p.Links {
		from, to := p.Points[l.From], p.Points[l.To]
		line, err := plotter.NewLine(plotter.XYs{{X: from.Pos, Y: from.Row}, {X: to.Pos, Y: to.Row}})
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("%s: link for read %s", p.Name, from.ReadID))
		}
		line.LineStyle.Color = linkColor
		line.LineStyle.Width = vg.Points(0.5)
		plt.Add(line)
	}
	if len(p.Points) > 0 {
		xys := make(plotter.XYs, len(p.Points))
		for i, pt := range p.Points {
			xys[i].X, xys[i].Y = pt.Pos, pt.Row
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("%s: points", p.Name))
		}
		scatter.GlyphStyle.Color = pointColor
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		plt.Add(scatter)
	}

	if len(p.YTicks) > 0 {
		ticks := make([]plot.Tick, len(p.YTicks))
		for i, t := range p.YTicks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		plt.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}
	// Add() widens the axes to fit the data, so the fixed windows are applied
	// last.
	if !p.X.IsZero() {
		plt.X.Min, plt.X.Max = p.X.Min, p.X.Max
	}
	if !p.Y.IsZero() {
		plt.Y.Min, plt.Y.Max = p.Y.Min, p.Y.Max
	}
	return plt, nil
}

// WriteFigure draws the panels stacked top to bottom into a single figure of
// the given size, and writes it to w in the given format (see Formats).
func WriteFigure(w io.Writer, format string, width, height vg.Length, panels ...*Panel) error {
	if len(panels) == 0 {
		return errors.E(errors.Invalid, "no panels to draw")
	}
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return errors.E(errors.Invalid, err, "figure format", format)
	}
	plots := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		plt, err := p.Plot()
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{plt}
	}
	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(12),
		PadY:      vg.Points(24),
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	if _, err := c.WriteTo(w); err != nil {
		return errors.E(err, "write figure")
	}
	return nil
}

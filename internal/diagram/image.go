package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gopsc/internal/prestress"
	"github.com/alexiusacademia/gopsc/internal/section"
)

// ExportLossDiagram exports the tendon stress curves per loss stage to an
// image file (png, svg or pdf by extension).
func ExportLossDiagram(table *prestress.LossTable, filename string) error {
	p := plot.New()
	p.Title.Text = "Prestress Losses Along Span"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Tendon stress (MPa)"
	p.Legend.Top = true

	curves := []struct {
		name   string
		values []float64
		color  color.RGBA
	}{
		{"after friction", table.Friction, color.RGBA{R: 0, G: 0, B: 139, A: 255}},
		{"after anchorage", table.Anchorage, color.RGBA{R: 100, G: 149, B: 237, A: 255}},
		{"immediate", table.Immediate, color.RGBA{R: 34, G: 139, B: 34, A: 255}},
		{"final", table.Final, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	}

	for _, c := range curves {
		pts := make(plotter.XYs, len(table.Positions))
		for i := range table.Positions {
			pts[i] = plotter.XY{X: table.Positions[i], Y: c.values[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = c.color
		p.Add(line)
		p.Legend.Add(c.name, line)
	}

	return save(p, filename, 7*vg.Inch, 4*vg.Inch)
}

// ExportSectionDiagram exports the section outline with its centroid and
// the tendon position at midspan.
func ExportSectionDiagram(sec *section.Section, props *section.Properties, eccentricity float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Cross-Section"
	p.X.Label.Text = "Width (m)"
	p.Y.Label.Text = "Height (m)"

	outline := make(plotter.XYs, len(sec.Vertices)+1)
	for i, v := range sec.Vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(sec.Vertices)] = plotter.XY{X: sec.Vertices[0].X, Y: sec.Vertices[0].Y}

	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Centroidal axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: props.MinX - 0.05, Y: props.CentroidY},
		{X: props.MaxX + 0.05, Y: props.CentroidY},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	// Tendon at midspan eccentricity (positive below the centroid)
	tendon, err := plotter.NewScatter(plotter.XYs{
		{X: props.CentroidX, Y: props.CentroidY - eccentricity},
	})
	if err != nil {
		return err
	}
	tendon.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	tendon.GlyphStyle.Radius = vg.Points(5)
	tendon.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tendon)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: props.MaxX + 0.06, Y: props.CentroidY},
			{X: props.CentroidX + 0.03, Y: props.CentroidY - eccentricity},
		},
		Labels: []string{"centroid", fmt.Sprintf("tendon e=%.2fm", eccentricity)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, filename, 5*vg.Inch, 5*vg.Inch)
}

// save writes the plot in the format given by the file extension,
// defaulting to png.
func save(p *plot.Plot, filename string, width, height vg.Length) error {
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

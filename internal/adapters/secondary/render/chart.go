// Package render produces the report artifacts: the comparison chart and the
// exported coefficient workbook.
package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"scattering-report/internal/core/domain"
)

// apertureColor assigns each aperture a fixed, distinct series color.
func apertureColor(a domain.Aperture) drawing.Color {
	switch a {
	case domain.Aperture5:
		return chart.ColorBlue
	case domain.Aperture10:
		return chart.ColorGreen
	default:
		return chart.ColorRed
	}
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// ChartRenderer draws the observed points and fitted lines for all three
// apertures on a single PNG chart.
type ChartRenderer struct {
	Width  int
	Height int
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Width: 1024, Height: 640}
}

func (r *ChartRenderer) Render(w io.Writer, table domain.LogTable, curves []domain.PredictionCurve) error {
	series := make([]chart.Series, 0, 2*len(curves))
	for _, curve := range curves {
		col := apertureColor(curve.Aperture)

		xs := make([]float64, len(table))
		ys := make([]float64, len(table))
		for i, row := range table {
			xs[i] = row.LnVoltageEV
			ys[i] = row.LnSp(curve.Aperture)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s data", curve.Aperture),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(col),
		})

		fx := make([]float64, len(curve.Points))
		fy := make([]float64, len(curve.Points))
		for i, p := range curve.Points {
			fx[i] = p.X
			fy[i] = p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s fit", curve.Aperture),
			XValues: fx,
			YValues: fy,
			Style:   lineStyle(col),
		})
	}

	ch := chart.Chart{
		Title:      "Plural Scattering Cross Section vs Accelerating Voltage",
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "ln(E0 [eV])"},
		YAxis:      chart.YAxis{Name: "ln(Sp [cm2/g])"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/timeseries"
)

var (
	historyColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	forecastColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// PlotRenderer draws history and forecast on one time axis and saves the
// figure. The image format follows the file extension.
type PlotRenderer struct {
	Path   string
	Title  string
	Width  vg.Length
	Height vg.Length
}

// NewPlotRenderer creates a renderer writing a 10x5 inch figure to path.
func NewPlotRenderer(path string) *PlotRenderer {
	return &PlotRenderer{
		Path:   path,
		Title:  "Daily average temperature forecast",
		Width:  10 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// Render draws both series and writes the image. The directory of Path must
// already exist.
func (r *PlotRenderer) Render(history, forecast *timeseries.Series) error {
	const op = "report.Render"

	if history.Len() == 0 && forecast.Len() == 0 {
		return errs.DataFormat(op, "nothing to plot", nil)
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Average temperature"
	p.X.Tick.Marker = plot.TimeTicks{Format: timeseries.DateLayout}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if err := addLine(p, history, "History", historyColor, nil); err != nil {
		return errs.DataFormat(op, "invalid history data", err)
	}
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	if err := addLine(p, forecast, "Forecast", forecastColor, dashes); err != nil {
		return errs.DataFormat(op, "invalid forecast data", err)
	}

	if err := p.Save(r.Width, r.Height, r.Path); err != nil {
		return errs.IO(op, "failed to save plot to "+r.Path, err)
	}
	return nil
}

func addLine(p *plot.Plot, s *timeseries.Series, label string, c color.Color, dashes []vg.Length) error {
	if s.Len() == 0 {
		return nil
	}

	pts := make(plotter.XYs, s.Len())
	for i, v := range s.Values {
		pts[i].X = float64(s.Timestamps[i].Unix())
		pts[i].Y = v
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	line.Dashes = dashes

	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

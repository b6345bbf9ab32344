package yieldcurve

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WriteChart renders the two-panel analysis chart to a PNG file: the
// current curve snapshot on top, the historical yield trends below.
// It returns ErrEmptySeries if the series has no observation.
func WriteChart(path string, s *YieldSeries) error {
	snapshot, err := snapshotPlot(s)
	if err != nil {
		return err
	}
	history, err := historyPlot(s)
	if err != nil {
		return err
	}

	// One image, two stacked panels.
	img := vgimg.New(8*vg.Inch, 10*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadY: vg.Millimeter * 5,
	}
	canvases := plot.Align([][]*plot.Plot{{snapshot}, {history}}, tiles, dc)
	snapshot.Draw(canvases[0][0])
	history.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create chart file %q: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("cannot write chart file %q: %w", path, err)
	}
	return nil
}

// snapshotPlot builds the current yield curve panel: yield against time to
// maturity on the latest day, each point annotated with its value.
func snapshotPlot(s *YieldSeries) (*plot.Plot, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("US Treasury Yield Curve - %s", snap.Date)
	p.X.Label.Text = "Maturity (Years)"
	p.Y.Label.Text = "Yield (%)"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(snap.Points))
	ticks := make([]plot.Tick, len(snap.Points))
	labels := make([]string, len(snap.Points))
	for i, pt := range snap.Points {
		xys[i] = plotter.XY{X: pt.Years, Y: pt.Yield}
		ticks[i] = plot.Tick{Value: pt.Years, Label: pt.Maturity.String()}
		labels[i] = Percent(pt.Yield).String()
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("cannot plot yield curve: %w", err)
	}
	line.Width = vg.Points(2)
	points.Radius = vg.Points(3)
	p.Add(line, points)

	// Annotate each quoted point, nudged above the marker.
	annotations := make(plotter.XYs, len(xys))
	for i, xy := range xys {
		annotations[i] = plotter.XY{X: xy.X, Y: xy.Y + 0.03}
	}
	texts, err := plotter.NewLabels(plotter.XYLabels{XYs: annotations, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("cannot annotate yield curve: %w", err)
	}
	p.Add(texts)

	return p, nil
}

// historyPlot builds the historical trends panel: one line per tenor over
// the whole window.
func historyPlot(s *YieldSeries) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = "Historical Treasury Yields"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Yield (%)"
	p.X.Tick.Marker = plot.TimeTicks{Format: DateFormat}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, m := range Maturities {
		xys := make(plotter.XYs, 0, s.Len())
		for on, obs := range s.Values() {
			xys = append(xys, plotter.XY{X: float64(on.time().Unix()), Y: obs[m]})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("cannot plot %s history: %w", m, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(m.Label(), line)
	}

	return p, nil
}

package spectrum

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotConfig styles the rendered spectrum line and figure.
type PlotConfig struct {
	Title     string
	XLabel    string
	YLabel    string
	LineWidth vg.Length
	Color     color.Color
}

// PlotOption mutates a PlotConfig.
type PlotOption func(*PlotConfig)

// WithTitle sets the figure title.
func WithTitle(title string) PlotOption {
	return func(c *PlotConfig) { c.Title = title }
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) PlotOption {
	return func(c *PlotConfig) { c.XLabel, c.YLabel = x, y }
}

// WithLineWidth sets the line width.
func WithLineWidth(w vg.Length) PlotOption {
	return func(c *PlotConfig) { c.LineWidth = w }
}

// WithColor sets the line color.
func WithColor(col color.Color) PlotOption {
	return func(c *PlotConfig) { c.Color = col }
}

// Plot draws the spectrum onto an existing plot surface and returns the
// added line. Composition with other plotters happens by adding them to the
// same plot; matplotlib-style hold-state toggling has no counterpart here
// and is intentionally not modeled.
func (s *Spectrum) Plot(p *plot.Plot, opts ...PlotOption) (*plotter.Line, error) {
	var cfg PlotConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	xys := make(plotter.XYs, len(s.Data))
	for i := range s.Data {
		xys[i].X = s.Axis[i]
		xys[i].Y = s.Data[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	if cfg.LineWidth > 0 {
		line.LineStyle.Width = cfg.LineWidth
	}
	if cfg.Color != nil {
		line.LineStyle.Color = cfg.Color
	}
	p.Add(line)

	if cfg.Title != "" {
		p.Title.Text = cfg.Title
	}
	if cfg.XLabel != "" {
		p.X.Label.Text = cfg.XLabel
	}
	if cfg.YLabel != "" {
		p.Y.Label.Text = cfg.YLabel
	}
	return line, nil
}

// Peek renders the spectrum onto a fresh figure and saves it to path. The
// format follows the file extension (.png, .pdf, .svg, ...).
func (s *Spectrum) Peek(path string, opts ...PlotOption) error {
	p := plot.New()
	p.X.Label.Text = s.AxisUnit.String()
	p.Y.Label.Text = "intensity"

	if _, err := s.Plot(p, opts...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

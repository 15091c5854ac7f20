package ideogram

// Point is one read position on a panel.
type Point struct {
	// ReadID identifies the read the point was derived from.
	ReadID string
	// Chrom is the chromosome whose row the point sits on.
	Chrom string
	// Row is the vertical position of the point.
	Row float64
	// Pos is the base position of the read, used as the x coordinate.
	Pos float64
}

// Track is a chromosome drawn as a horizontal line from 0 to Length.
type Track struct {
	Chrom  string
	Row    int
	Length int
}

// Link connects two points of a panel, by index into Panel.Points.
type Link struct {
	From, To int
}

// Tick is a labeled position on the y axis. An empty label draws a bare
// tick.
type Tick struct {
	Value float64
	Label string
}

// Window is an explicit axis range. A zero Window means the range is derived
// from the data when drawing.
type Window struct {
	Min, Max float64
}

// IsZero returns true if w is unset.
func (w Window) IsZero() bool { return w.Min == 0 && w.Max == 0 }

// Panel is the plot-independent description of one subplot.
type Panel struct {
	// Name identifies the panel in exported point tables.
	Name string

	Title  string
	XLabel string
	YLabel string

	YTicks []Tick
	X, Y   Window

	Tracks []Track
	Points []Point
	Links  []Link
}

// PointsOnRow returns the points placed on the given row.
func (p *Panel) PointsOnRow(row float64) []Point {
	var pts []Point
	for _, pt := range p.Points {
		if pt.Row == row {
			pts = append(pts, pt)
		}
	}
	return pts
}

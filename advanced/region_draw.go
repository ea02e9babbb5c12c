package advanced

import (
	"math"

	"github.com/fogleman/gg"
)

type DrawOptions struct {
	// Pixels per unit. Defaults to 50.
	Scale float64
	// Pixels around the plotted area. Defaults to 40.
	Padding int
	// Longest side of the canvas in pixels, padding included. The scale is
	// lowered to fit a large region. Defaults to 2048.
	MaxSize int
}

const (
	defaultDrawScale   = 50
	defaultDrawPadding = 40
	defaultDrawMaxSize = 2048
	vertexRadius       = 4
	optimumRadius      = 7
)

func (o DrawOptions) withDefaults() DrawOptions {
	if o.Scale <= 0 {
		o.Scale = defaultDrawScale
	}
	if o.Padding <= 0 {
		o.Padding = defaultDrawPadding
	}
	if o.MaxSize <= 0 {
		o.MaxSize = defaultDrawMaxSize
	}
	return o
}

// Render the feasible region, its vertices and both optima. The canvas covers
// the quadrant from the origin to the furthest vertex (at least one unit each
// way), with y pointing up, shrunk if needed to fit within MaxSize. An
// infeasible result draws only the axes.
func (r *Result) Draw(opts DrawOptions) *gg.Context {
	opts = opts.withDefaults()

	maxX, maxY := 1.0, 1.0
	for _, p := range r.Vertices {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Never plot less than one pixel, whatever the padding
	available := math.Max(1, float64(opts.MaxSize-opts.Padding*2))
	if extent := math.Max(maxX, maxY); opts.Scale*extent > available {
		opts.Scale = available / extent
	}

	width := int(opts.Scale*maxX) + opts.Padding*2
	height := int(opts.Scale*maxY) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	c.Scale(opts.Scale, opts.Scale)

	// Axes
	c.SetLineWidth(1)
	c.SetRGB(0.5, 0.5, 0.5)
	c.MoveTo(0, 0)
	c.LineTo(maxX, 0)
	c.MoveTo(0, 0)
	c.LineTo(0, maxY)
	c.Stroke()

	if !r.IsOptimal() {
		return c
	}

	region := Region(r.Vertices)
	c.SetLineWidth(2)
	c.MoveTo(region[0].X, region[0].Y)
	for _, p := range region[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGBA(0, 0.5, 0, 0.7)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	for _, p := range r.Vertices {
		drawDot(c, p, vertexRadius)
	}
	c.SetRGB(0.3, 0.4, 1)
	drawDot(c, r.Min.Point, optimumRadius)
	c.SetRGB(1, 0.2, 0.2)
	drawDot(c, r.Max.Point, optimumRadius)
	return c
}

func (r *Result) SavePNG(path string, opts DrawOptions) error {
	return r.Draw(opts).SavePNG(path)
}

// Dots are drawn in native coordinates so the scale doesn't stretch them.
func drawDot(c *gg.Context, p Point, radius float64) {
	x, y := c.TransformPoint(p.X, p.Y)
	c.Push()
	c.Identity()
	c.DrawCircle(x, y, radius)
	c.Fill()
	c.Pop()
}

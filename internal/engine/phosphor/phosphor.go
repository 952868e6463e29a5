// Package phosphor renders beam samples the way a scope screen shows them:
// every pair of consecutive beam-on samples becomes a short glowing stroke.
package phosphor

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Faultbox/vectorscope/internal/host"
	vmath "github.com/Faultbox/vectorscope/pkg/math"
)

// BeamThreshold is the intensity above which the beam is considered on.
const BeamThreshold = 2.5

// Options configures a Canvas.
type Options struct {
	Width, Height int

	// Span is the voltage mapped to the screen edge in each direction.
	Span float32

	// Stroke is the trace width in pixels.
	Stroke float32

	Trace      color.RGBA
	Background color.RGBA
}

// DefaultOptions returns a 512x512 green-on-black screen spanning +/-10 V.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Span:       10,
		Stroke:     1.5,
		Trace:      color.RGBA{R: 64, G: 255, B: 96, A: 255},
		Background: color.RGBA{A: 255},
	}
}

// Canvas accumulates strokes into a coverage mask.
type Canvas struct {
	opts Options
	z    *vector.Rasterizer

	prev     vmath.Vec2
	havePrev bool
	strokes  int
}

// NewCanvas creates an empty canvas. Non-positive sizes fall back to the
// defaults.
func NewCanvas(opts Options) *Canvas {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Span <= 0 {
		opts.Span = def.Span
	}
	if opts.Stroke <= 0 {
		opts.Stroke = def.Stroke
	}
	return &Canvas{
		opts: opts,
		z:    vector.NewRasterizer(opts.Width, opts.Height),
	}
}

// Strokes returns the number of strokes drawn.
func (c *Canvas) Strokes() int {
	return c.strokes
}

// Reset clears the canvas.
func (c *Canvas) Reset() {
	c.z.Reset(c.opts.Width, c.opts.Height)
	c.havePrev = false
	c.strokes = 0
}

// AddFrame plots every sample of a host block.
func (c *Canvas) AddFrame(f host.Frame) {
	for i := 0; i < f.Len(); i++ {
		c.Plot(f.X[i], f.Y[i], f.Intensity[i])
	}
}

// Plot feeds one sample. A dark sample lifts the pen.
func (c *Canvas) Plot(x, y, intensity float32) {
	if intensity < BeamThreshold {
		c.havePrev = false
		return
	}
	p := c.toPixels(x, y)
	if c.havePrev {
		c.stroke(c.prev, p)
	}
	c.prev, c.havePrev = p, true
}

// toPixels maps volts onto the image with +Y up. Off-screen samples are
// pinned to the border, where the rasterizer can still address them.
func (c *Canvas) toPixels(x, y float32) vmath.Vec2 {
	w, h := float32(c.opts.Width), float32(c.opts.Height)
	return vmath.Vec2{
		X: min(max((x/c.opts.Span+1)*w/2, 0), w),
		Y: min(max((1-y/c.opts.Span)*h/2, 0), h),
	}
}

// stroke adds a quad around a->b. Every quad has the same winding, so
// overlapping strokes saturate instead of cancelling.
func (c *Canvas) stroke(a, b vmath.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	half := c.opts.Stroke / 2
	n := vmath.Vec2{X: -d.Y, Y: d.X}.Scale(half / l)

	c.z.MoveTo(a.X+n.X, a.Y+n.Y)
	c.z.LineTo(b.X+n.X, b.Y+n.Y)
	c.z.LineTo(b.X-n.X, b.Y-n.Y)
	c.z.LineTo(a.X-n.X, a.Y-n.Y)
	c.z.ClosePath()
	c.strokes++
}

// Image composites the trace over the background.
func (c *Canvas) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, c.opts.Width, c.opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
	c.z.DrawOp = draw.Over
	c.z.Draw(dst, dst.Bounds(), image.NewUniform(c.opts.Trace), image.Point{})
	return dst
}

// Package canvas implements a small HTML-canvas-like drawing context on top
// of an Ebitengine image.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/canvasball/ball"
)

var _ ball.Surface = (*Canvas)(nil)

// Canvas draws paths onto a persistent image. Whatever is drawn stays until
// it is cleared, like a browser canvas.
type Canvas struct {
	dst  *ebiten.Image
	path vector.Path

	fill      color.Color
	fillStyle string
}

// New allocates a width x height canvas.
func New(width, height int) *Canvas {
	return Wrap(ebiten.NewImage(width, height))
}

// Wrap draws onto an existing image.
func Wrap(img *ebiten.Image) *Canvas {
	return &Canvas{
		dst:       img,
		fill:      color.Black,
		fillStyle: "#000000",
	}
}

func (c *Canvas) Image() *ebiten.Image {
	return c.dst
}

// FillStyle returns the last accepted fill style.
func (c *Canvas) FillStyle() string {
	return c.fillStyle
}

func (c *Canvas) BeginPath() {
	c.path = vector.Path{}
}

func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	c.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), arcDirection(counterclockwise))
}

// SetFillStyle ignores values that do not parse, keeping the previous style.
func (c *Canvas) SetFillStyle(style string) {
	col, err := ParseColor(style)
	if err != nil {
		return
	}
	c.fill = col
	c.fillStyle = style
}

func (c *Canvas) Fill() {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.fill)
	vector.FillPath(c.dst, &c.path, &vector.FillOptions{}, op)
}

func (c *Canvas) ClearRect(x, y, width, height float64) {
	r := clearBounds(x, y, width, height).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	c.dst.SubImage(r).(*ebiten.Image).Clear()
}

func arcDirection(counterclockwise bool) vector.Direction {
	if counterclockwise {
		return vector.CounterClockwise
	}
	return vector.Clockwise
}

// clearBounds returns the smallest pixel rectangle covering the given
// rectangle. Negative sizes extend left/up.
func clearBounds(x, y, width, height float64) image.Rectangle {
	if width < 0 {
		x, width = x+width, -width
	}
	if height < 0 {
		y, height = y+height, -height
	}
	return image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+width)),
		int(math.Ceil(y+height)),
	)
}

package ball

import "math"

// undrawMargin pads the cleared rectangle so anti-aliased edges are erased too.
const undrawMargin = 2

// Surface is the subset of a 2D drawing context the ball renders through.
type Surface interface {
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)
	SetFillStyle(style string)
	Fill()
	ClearRect(x, y, width, height float64)
}

// KeyState reports whether a key identifier is currently held.
type KeyState interface {
	IsHeld(key string) bool
}

// KeyBinding maps the four movement directions to key identifiers.
type KeyBinding struct {
	Up    string
	Down  string
	Left  string
	Right string
}

// Ball is a keyboard-steered circle. Position and velocity are plain fields so
// the owning scene can read or override them between frames.
type Ball struct {
	X, Y           float64
	SpeedX, SpeedY float64
	// Color is the fill style used by the next Draw.
	Color string

	radius       float64
	acceleration float64
	keys         *KeyBinding
	input        KeyState
	surface      Surface
}

// New creates a ball at the origin with zero velocity. keys is kept by
// reference; changes to the pointed-to binding are picked up on the next
// UpdateSpeed.
func New(surface Surface, input KeyState, radius float64, color string, acceleration float64, keys *KeyBinding) *Ball {
	return &Ball{
		Color:        color,
		radius:       radius,
		acceleration: acceleration,
		keys:         keys,
		input:        input,
		surface:      surface,
	}
}

func (b *Ball) Radius() float64 {
	return b.radius
}

func (b *Ball) Acceleration() float64 {
	return b.acceleration
}

func (b *Ball) Keys() *KeyBinding {
	return b.keys
}

// Draw fills a circle at the current position.
func (b *Ball) Draw() {
	b.surface.BeginPath()
	b.surface.Arc(b.X, b.Y, b.radius, 0, 2*math.Pi, false)
	b.surface.SetFillStyle(b.Color)
	b.surface.Fill()
}

// Undraw clears the bounding box of the circle at the current position.
func (b *Ball) Undraw() {
	b.surface.ClearRect(
		b.X-b.radius-undrawMargin,
		b.Y-b.radius-undrawMargin,
		b.radius*2+undrawMargin*2,
		b.radius*2+undrawMargin*2,
	)
}

// UpdateSpeed applies one step of acceleration for every held direction.
// Opposite directions held together cancel out.
func (b *Ball) UpdateSpeed() {
	keys := b.keys
	if b.input.IsHeld(keys.Up) {
		b.SpeedY -= b.acceleration
	}
	if b.input.IsHeld(keys.Down) {
		b.SpeedY += b.acceleration
	}
	if b.input.IsHeld(keys.Left) {
		b.SpeedX -= b.acceleration
	}
	if b.input.IsHeld(keys.Right) {
		b.SpeedX += b.acceleration
	}
}

// UpdatePosition advances the position by the current velocity.
func (b *Ball) UpdatePosition() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// Update advances the ball by one frame.
func (b *Ball) Update() {
	b.UpdateSpeed()
	b.UpdatePosition()
}

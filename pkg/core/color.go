package core

import "fmt"

// Color is a linear RGB radiance/reflectance value. Kept distinct from Vec3,
// even though the underlying representation is identical, so a colour can
// never be accidentally added to a direction at compile time.
type Color struct {
	R, G, B float32
}

func NewColor(r, g, b float32) Color { return Color{r, g, b} }

var Black = Color{0, 0, 0}
var White = Color{1, 1, 1}

func (c Color) String() string {
	return fmt.Sprintf("Color{%g, %g, %g}", c.R, c.G, c.B)
}

func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }

func (c Color) Scale(s float32) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Mul multiplies channel-by-channel (e.g. albedo * incoming light).
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

func (c Color) IsBlack() bool { return c == Black }

func (c Color) IsFinite() bool {
	return Vec3{c.R, c.G, c.B}.IsFinite()
}

// AsVec3 reinterprets the colour as a plain vector, used by the variance
// estimator which tracks per-channel statistics with ordinary vector algebra.
func (c Color) AsVec3() Vec3 { return Vec3{c.R, c.G, c.B} }

func ColorFromVec3(v Vec3) Color { return Color{v.X, v.Y, v.Z} }

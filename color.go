package matprop

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is a linear RGBA color. Channels are nominally in [0,1] but are left
// unbounded so HDR emission colors can be stored as-is.
type Color mgl32.Vec4

func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4(c)
}

// WithAlpha returns c with only the alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// MaxComponent is the largest of the RGB channels. Alpha is ignored.
func (c Color) MaxComponent() float32 {
	m := c[0]
	if c[1] > m {
		m = c[1]
	}
	if c[2] > m {
		m = c[2]
	}
	return m
}

// Scale multiplies every channel, alpha included, by s.
func (c Color) Scale(s float32) Color {
	return Color(mgl32.Vec4(c).Mul(s))
}

// Lerp interpolates from c towards to. t is clamped to [0,1].
func (c Color) Lerp(to Color, t float32) Color {
	t = mgl32.Clamp(t, 0, 1)
	from := mgl32.Vec4(c)
	return Color(from.Add(mgl32.Vec4(to).Sub(from).Mul(t)))
}

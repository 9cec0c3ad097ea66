package matprop

import (
	"math"
)

const (
	// Byte value the engine's HDR color packing treats as the start of the
	// overexposed range. Fixed by the packing format.
	maxByteForOverexposedColor = 191
	maxByte                    = 255
	minColorComponent          = 0.01
)

// HDRColorIntensity returns the exposure exponent encoded in an HDR color.
// Colors whose brightest channel is below 0.01 are treated as 0.01.
func HDRColorIntensity(c Color) float32 {
	maxComponent := max(c.MaxComponent(), minColorComponent)
	scaleFactor := maxByteForOverexposedColor / float64(maxComponent)
	return float32(math.Log2(maxByte / scaleFactor))
}

// ChangeHDRColorIntensity shifts the exposure of an HDR color by delta stops.
// Hue is preserved and the result is not clamped.
func ChangeHDRColorIntensity(c Color, delta float32) Color {
	current := HDRColorIntensity(c)
	unit := c.Scale(float32(1 / math.Exp2(float64(current))))
	return unit.Scale(float32(math.Exp2(float64(current + delta))))
}

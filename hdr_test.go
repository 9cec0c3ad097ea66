package matprop

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func colorsClose(a, b Color, eps float32) bool {
	for i := 0; i < 4; i++ {
		if !mgl32.FloatEqualThreshold(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

var hdrSamples = []Color{
	NewColor(1, 0, 0, 1),
	NewColor(2, 0, 0, 1),
	NewColor(0.5, 0.25, 0.125, 1),
	NewColor(8, 4, 1, 1),
	NewColor(0.02, 0.011, 0.5, 0.5),
	NewColor(0.75, 0.75, 0.75, 0),
}

func TestChangeHDRColorIntensity_ZeroIsIdentity(t *testing.T) {
	for _, c := range hdrSamples {
		got := ChangeHDRColorIntensity(c, 0)
		if !colorsClose(got, c, 1e-4) {
			t.Errorf("ChangeHDRColorIntensity(%v, 0) = %v, want %v", c, got, c)
		}
	}
}

func TestChangeHDRColorIntensity_Invertible(t *testing.T) {
	for _, c := range hdrSamples {
		for _, d := range []float32{-3, -1, -0.5, 0.5, 1, 2, 4} {
			got := ChangeHDRColorIntensity(ChangeHDRColorIntensity(c, d), -d)
			if !colorsClose(got, c, 1e-4) {
				t.Errorf("shift %v then %v on %v gave %v", d, -d, c, got)
			}
		}
	}
}

func TestChangeHDRColorIntensity_OneStopDoubles(t *testing.T) {
	c := NewColor(2, 0, 0, 1)

	up := ChangeHDRColorIntensity(c, 1)

	if !colorsClose(up, c.Scale(2), 1e-4) {
		t.Errorf("expected one stop to double %v, got %v", c, up)
	}
	back := ChangeHDRColorIntensity(up, -1)
	if !colorsClose(back, c, 1e-4) {
		t.Errorf("expected %v after shifting back, got %v", c, back)
	}
}

func TestChangeHDRColorIntensity_BlackDoesNotBlowUp(t *testing.T) {
	black := NewColor(0, 0, 0, 1)

	got := ChangeHDRColorIntensity(black, 2)

	for i := 0; i < 4; i++ {
		if math.IsNaN(float64(got[i])) {
			t.Fatalf("channel %d is NaN: %v", i, got)
		}
	}
	if got.R() != 0 || got.G() != 0 || got.B() != 0 {
		t.Errorf("black should stay black, got %v", got)
	}
	if !mgl32.FloatEqualThreshold(got.A(), 4, 1e-4) {
		t.Errorf("alpha is scaled with the other channels, want 4 got %v", got.A())
	}
}

func TestHDRColorIntensity(t *testing.T) {
	// 191/255 of full scale sits exactly at intensity 0.
	c := NewColor(191.0/255.0, 0, 0, 1)
	if got := HDRColorIntensity(c); mgl32.Abs(got) > 1e-5 {
		t.Errorf("expected intensity 0, got %v", got)
	}

	brighter := c.Scale(4)
	if got := HDRColorIntensity(brighter); !mgl32.FloatEqualThreshold(got, 2, 1e-5) {
		t.Errorf("expected intensity 2, got %v", got)
	}

	floor := HDRColorIntensity(NewColor(0.001, 0, 0, 1))
	if floor != HDRColorIntensity(NewColor(0.01, 0, 0, 1)) {
		t.Errorf("components under 0.01 should clamp to the 0.01 floor")
	}
}

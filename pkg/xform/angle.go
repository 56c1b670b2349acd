package xform

import (
	"math"

	"github.com/chewxy/math32"
)

// LerpAngle interpolates from one angle to another along the shorter arc
// and returns the result wrapped into [0, 360).
func LerpAngle(from, to, frac float32) float32 {
	if to-from > 180 {
		to -= 360
	}
	if to-from < -180 {
		to += 360
	}
	return wrap360(from + frac*(to-from))
}

func wrap360(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// AngleMod wraps a into [0, 360) by quantizing it to a 16-bit fixed-point
// angle. The conversion truncates toward zero to a 32-bit integer before
// masking, so negative angles wrap around through the mask. Angles whose
// fixed-point value does not fit in 32 bits, and NaN, map to 0.
func AngleMod(a float32) float32 {
	return float32((360.0 / 65536) * float64(truncInt32(float64(a)*(65536/360.0))&65535))
}

// truncInt32 truncates f toward zero. Out of range values and NaN give
// math.MinInt32, the x86 conversion result.
func truncInt32(f float64) int32 {
	if !(f > math.MinInt32-1 && f < math.MaxInt32+1) {
		return math.MinInt32
	}
	return int32(f)
}

package vecmath

import "github.com/chewxy/math32"

// Vec3 is a 3-component single-precision vector.
type Vec3 [3]float32

// Origin is the zero vector.
var Origin = Vec3{0, 0, 0}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Add returns a + b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns v * s.
func Scale(v Vec3, s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MA returns a + scale*b.
func MA(a Vec3, scale float32, b Vec3) Vec3 {
	return Vec3{a[0] + scale*b[0], a[1] + scale*b[1], a[2] + scale*b[2]}
}

// Negate returns -v.
func Negate(v Vec3) Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Copy writes in to out.
func Copy(in Vec3, out *Vec3) {
	out[0] = in[0]
	out[1] = in[1]
	out[2] = in[2]
}

// Equal reports whether a and b are componentwise equal.
func Equal(a, b Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// Length returns the Euclidean length of v.
func Length(v Vec3) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Normalize scales v to unit length in place and returns its length
// before normalization. A zero vector is left untouched and 0 is returned,
// so callers must check the result before dividing by it.
func (v *Vec3) Normalize() float32 {
	length := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if length == 0 {
		return 0
	}
	length = math32.Sqrt(length)
	ilength := 1 / length
	v[0] *= ilength
	v[1] *= ilength
	v[2] *= ilength
	return length
}

// NormalizeTo writes the unit-length form of v into out and returns the
// length of v. When v has zero length out is not written at all.
func NormalizeTo(v Vec3, out *Vec3) float32 {
	length := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if length == 0 {
		return 0
	}
	length = math32.Sqrt(length)
	ilength := 1 / length
	out[0] = v[0] * ilength
	out[1] = v[1] * ilength
	out[2] = v[2] * ilength
	return length
}

// Log2 returns floor(log2(val)) for val >= 1 and 0 otherwise.
func Log2(val int) int {
	answer := 0
	for val >>= 1; val > 0; val >>= 1 {
		answer++
	}
	return answer
}

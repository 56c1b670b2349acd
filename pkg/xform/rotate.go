package xform

import (
	"math"

	"github.com/chazu/qgeom/pkg/vecmath"
	"github.com/chewxy/math32"
)

// Euler angle indices.
const (
	Pitch = 0 // up / down
	Yaw   = 1 // left / right
	Roll  = 2 // fall over
)

// RotatePointAroundVector rotates point by degrees about axis, right-handed.
// axis must be unit length.
func RotatePointAroundVector(axis, point vecmath.Vec3, degrees float32) vecmath.Vec3 {
	vf := axis
	vr := PerpendicularVector(axis)
	vup := vecmath.Cross(vr, vf)

	// Basis vectors as columns; its inverse is the transpose.
	m := vecmath.Mat3{
		{vr[0], vup[0], vf[0]},
		{vr[1], vup[1], vf[1]},
		{vr[2], vup[2], vf[2]},
	}
	im := m.Transpose()

	sn, cs := math.Sincos(float64(degrees) * math.Pi / 180)
	zrot := vecmath.Mat3{
		{float32(cs), float32(sn), 0},
		{-float32(sn), float32(cs), 0},
		{0, 0, 1},
	}

	rot := vecmath.ConcatRotations(vecmath.ConcatRotations(m, zrot), im)
	return rot.MulVec(point)
}

// ProjectPointOnPlane returns p minus its component along normal. normal
// does not have to be unit length.
func ProjectPointOnPlane(p, normal vecmath.Vec3) vecmath.Vec3 {
	d := vecmath.Dot(normal, p) / vecmath.Dot(normal, normal)
	return vecmath.MA(p, -d, normal)
}

// PerpendicularVector returns a unit vector perpendicular to src. It
// assumes src is normalized; other inputs give a perpendicular vector that
// is not guaranteed to be unit length.
func PerpendicularVector(src vecmath.Vec3) vecmath.Vec3 {
	// Smallest magnitude axis; the first one wins ties.
	pos := 0
	minelem := float32(1)
	for i := 0; i < 3; i++ {
		if a := math32.Abs(src[i]); a < minelem {
			pos = i
			minelem = a
		}
	}

	var axis vecmath.Vec3
	axis[pos] = 1

	dst := ProjectPointOnPlane(axis, src)
	dst.Normalize()
	return dst
}

// AngleVectors converts Euler angles into a forward, right and up basis.
// Any of the outputs may be nil. The roll terms are only computed when
// right or up is wanted.
func AngleVectors(angles vecmath.Vec3, forward, right, up *vecmath.Vec3) {
	sy, cy := sincosDeg(angles[Yaw])
	sp, cp := sincosDeg(angles[Pitch])

	var sr, cr float32
	if right != nil || up != nil {
		sr, cr = sincosDeg(angles[Roll])
	}

	if forward != nil {
		forward[0] = cp * cy
		forward[1] = cp * sy
		forward[2] = -sp
	}
	if right != nil {
		right[0] = -sr*sp*cy + cr*sy
		right[1] = -sr*sp*sy - cr*cy
		right[2] = -sr * cp
	}
	if up != nil {
		up[0] = cr*sp*cy + sr*sy
		up[1] = cr*sp*sy - sr*cy
		up[2] = cr * cp
	}
}

func sincosDeg(deg float32) (s, c float32) {
	angle := float32(float64(deg) * (math.Pi * 2 / 360))
	sn, cs := math.Sincos(float64(angle))
	return float32(sn), float32(cs)
}

// FromAngles builds the affine transform of an entity at origin facing
// angles. The rotation columns are forward, left and up, so zero angles
// give the identity rotation.
func FromAngles(angles, origin vecmath.Vec3) vecmath.Mat3x4 {
	var forward, right, up vecmath.Vec3
	AngleVectors(angles, &forward, &right, &up)

	var m vecmath.Mat3x4
	for i := 0; i < 3; i++ {
		m[i][0] = forward[i]
		m[i][1] = -right[i]
		m[i][2] = up[i]
		m[i][3] = origin[i]
	}
	return m
}

package spatial

import (
	"github.com/chazu/qgeom/pkg/vecmath"
	"github.com/chewxy/math32"
)

// PlaneType buckets planes by their dominant axis.
type PlaneType int

const (
	PlaneX    PlaneType = iota // normal is exactly +X
	PlaneY                     // normal is exactly +Y
	PlaneZ                     // normal is exactly +Z
	PlaneAnyX                  // X is the largest magnitude component
	PlaneAnyY
	PlaneAnyZ
)

func (t PlaneType) String() string {
	switch t {
	case PlaneX:
		return "x"
	case PlaneY:
		return "y"
	case PlaneZ:
		return "z"
	case PlaneAnyX:
		return "anyx"
	case PlaneAnyY:
		return "anyy"
	case PlaneAnyZ:
		return "anyz"
	default:
		return "unknown"
	}
}

// IsAxial reports whether t is one of the exactly axis-aligned types.
func (t PlaneType) IsAxial() bool {
	return t < PlaneAnyX
}

// Plane is the set of points p with Dot(Normal, p) == Dist.
//
// Type and SignBits are derived from Normal. Use NewPlane or SetNormal so
// they stay in sync; BoxOnPlaneSide returns wrong answers otherwise.
type Plane struct {
	Normal   vecmath.Vec3
	Dist     float32
	Type     PlaneType
	SignBits uint8 // bit i set iff Normal[i] < 0
}

// NewPlane returns a plane with its derived fields computed.
func NewPlane(normal vecmath.Vec3, dist float32) Plane {
	p := Plane{Dist: dist}
	p.SetNormal(normal)
	return p
}

// SetNormal replaces the normal and recomputes Type and SignBits.
func (p *Plane) SetNormal(normal vecmath.Vec3) {
	p.Normal = normal
	p.Type = PlaneTypeForNormal(normal)
	p.SignBits = SignBitsForNormal(normal)
}

// DistanceTo returns the signed distance from the plane to pt, scaled by
// the normal's length.
func (p *Plane) DistanceTo(pt vecmath.Vec3) float32 {
	return vecmath.Dot(p.Normal, pt) - p.Dist
}

// SignBitsForNormal returns the 3-bit code of the normal's negative
// components. Negative zero does not count as negative.
func SignBitsForNormal(normal vecmath.Vec3) uint8 {
	var bits uint8
	for i := 0; i < 3; i++ {
		if normal[i] < 0 {
			bits |= 1 << i
		}
	}
	return bits
}

// PlaneTypeForNormal classifies a normal. A component of exactly 1.0 or
// more makes the plane axial, checked X then Y then Z. Otherwise the
// largest magnitude component wins, with ties going to X, then Y.
func PlaneTypeForNormal(normal vecmath.Vec3) PlaneType {
	// NOTE: no epsilon around 1.0; near-axial normals fall through to the
	// "any" types.
	if normal[0] >= 1 {
		return PlaneX
	}
	if normal[1] >= 1 {
		return PlaneY
	}
	if normal[2] >= 1 {
		return PlaneZ
	}

	ax := math32.Abs(normal[0])
	ay := math32.Abs(normal[1])
	az := math32.Abs(normal[2])

	if ax >= ay && ax >= az {
		return PlaneAnyX
	}
	if ay >= ax && ay >= az {
		return PlaneAnyY
	}
	return PlaneAnyZ
}

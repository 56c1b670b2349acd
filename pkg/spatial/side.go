package spatial

import "github.com/chazu/qgeom/pkg/vecmath"

// Side is the result of a box/plane test.
type Side uint8

const (
	SideFront Side = 1                    // entirely on or in front of the plane
	SideBack  Side = 2                    // entirely behind the plane
	SideCross      = SideFront | SideBack // straddles the plane
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	case SideCross:
		return "cross"
	default:
		return "none"
	}
}

// cornerDist is shared by both box tests so they round identically. The
// conversion keeps the compiler from fusing the subtraction into the dot
// product.
func cornerDist(p *Plane, corner vecmath.Vec3) float32 {
	return float32(vecmath.Dot(p.Normal, corner)) - p.Dist
}

func sides(far, near float32) Side {
	var s Side
	if far >= 0 {
		s = SideFront
	}
	if near < 0 {
		s |= SideBack
	}
	return s
}

// BoxOnPlaneSide2 is the general box/plane test. For each axis it picks
// the box coordinates that maximize (far) and minimize (near) the distance
// to the plane, based on the sign of the normal on that axis.
//
// It is the reference BoxOnPlaneSide is checked against.
func BoxOnPlaneSide2(b Bounds, p *Plane) Side {
	var far, near vecmath.Vec3
	for i := 0; i < 3; i++ {
		if p.Normal[i] < 0 {
			far[i] = b.Mins[i]
			near[i] = b.Maxs[i]
		} else {
			far[i] = b.Maxs[i]
			near[i] = b.Mins[i]
		}
	}
	return sides(cornerDist(p, far), cornerDist(p, near))
}

// BoxOnPlaneSide returns which sides of p the box lies on. It picks the
// far and near corners from the plane's precomputed SignBits instead of
// testing each normal component, and gives the same answer as
// BoxOnPlaneSide2 for every input where SignBits matches the normal.
func BoxOnPlaneSide(b Bounds, p *Plane) Side {
	mins, maxs := b.Mins, b.Maxs

	var far, near vecmath.Vec3
	switch p.SignBits {
	case 1:
		far = vecmath.Vec3{mins[0], maxs[1], maxs[2]}
		near = vecmath.Vec3{maxs[0], mins[1], mins[2]}
	case 2:
		far = vecmath.Vec3{maxs[0], mins[1], maxs[2]}
		near = vecmath.Vec3{mins[0], maxs[1], mins[2]}
	case 3:
		far = vecmath.Vec3{mins[0], mins[1], maxs[2]}
		near = vecmath.Vec3{maxs[0], maxs[1], mins[2]}
	case 4:
		far = vecmath.Vec3{maxs[0], maxs[1], mins[2]}
		near = vecmath.Vec3{mins[0], mins[1], maxs[2]}
	case 5:
		far = vecmath.Vec3{mins[0], maxs[1], mins[2]}
		near = vecmath.Vec3{maxs[0], mins[1], maxs[2]}
	case 6:
		far = vecmath.Vec3{maxs[0], mins[1], mins[2]}
		near = vecmath.Vec3{mins[0], maxs[1], maxs[2]}
	case 7:
		far = mins
		near = maxs
	default: // 0
		far = maxs
		near = mins
	}
	return sides(cornerDist(p, far), cornerDist(p, near))
}

package spatial

import "github.com/chazu/qgeom/pkg/vecmath"

// BoundsSentinel is the magnitude ClearBounds uses for an empty box.
// Geometry farther than this from the origin on any axis is not handled.
const BoundsSentinel = 99999

// Bounds is an axis-aligned box.
type Bounds struct {
	Mins vecmath.Vec3
	Maxs vecmath.Vec3
}

// ClearBounds returns an empty box: mins at +BoundsSentinel and maxs at
// -BoundsSentinel, so the first added point replaces both.
func ClearBounds() Bounds {
	return Bounds{
		Mins: vecmath.Vec3{BoundsSentinel, BoundsSentinel, BoundsSentinel},
		Maxs: vecmath.Vec3{-BoundsSentinel, -BoundsSentinel, -BoundsSentinel},
	}
}

// AddPoint grows b to contain v.
func (b *Bounds) AddPoint(v vecmath.Vec3) {
	for i := 0; i < 3; i++ {
		val := v[i]
		if val < b.Mins[i] {
			b.Mins[i] = val
		}
		if val > b.Maxs[i] {
			b.Maxs[i] = val
		}
	}
}

// Union grows b to contain o. Empty boxes contribute nothing.
func (b *Bounds) Union(o Bounds) {
	if o.IsEmpty() {
		return
	}
	b.AddPoint(o.Mins)
	b.AddPoint(o.Maxs)
}

// IsEmpty reports whether no point has been added, i.e. mins > maxs on
// some axis.
func (b Bounds) IsEmpty() bool {
	return b.Mins[0] > b.Maxs[0] || b.Mins[1] > b.Maxs[1] || b.Mins[2] > b.Maxs[2]
}

// Center returns the midpoint of the box.
func (b Bounds) Center() vecmath.Vec3 {
	return vecmath.Scale(vecmath.Add(b.Mins, b.Maxs), 0.5)
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() vecmath.Vec3 {
	return vecmath.Sub(b.Maxs, b.Mins)
}

// Corners returns the eight corners. Corner i takes Maxs on axis j when
// bit j of i is set.
func (b Bounds) Corners() [8]vecmath.Vec3 {
	var c [8]vecmath.Vec3
	for i := range c {
		for j := 0; j < 3; j++ {
			if i&(1<<j) != 0 {
				c[i][j] = b.Maxs[j]
			} else {
				c[i][j] = b.Mins[j]
			}
		}
	}
	return c
}

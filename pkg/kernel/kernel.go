// Package kernel defines the solid modeling interface the geometry core
// feeds. A kernel builds solids from primitives, booleans and rigid
// transforms, and reports each solid's axis-aligned bounds in the core's
// float32 Bounds type so solids can be classified against planes.
package kernel

import "github.com/chazu/qgeom/pkg/spatial"

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// Bounds returns the axis-aligned bounding box.
	Bounds() spatial.Bounds
}

// Kernel builds and meshes solids.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}

// Classify reports which side of p the bounds of s lie on.
func Classify(s Solid, p *spatial.Plane) spatial.Side {
	return spatial.BoxOnPlaneSide(s.Bounds(), p)
}

// Cull returns the indices of the solids whose bounds are not entirely
// behind any of the planes.
func Cull(solids []Solid, planes []spatial.Plane) []int {
	boxes := make([]spatial.Bounds, len(solids))
	for i, s := range solids {
		boxes[i] = s.Bounds()
	}
	return spatial.CullBoxes(boxes, planes)
}

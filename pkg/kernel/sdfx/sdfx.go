// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/qgeom/pkg/kernel"
	"github.com/chazu/qgeom/pkg/spatial"
	"github.com/chazu/qgeom/pkg/vecmath"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution along
// the longest axis of a solid.
const DefaultMeshCells = 64

// ToVec converts a core vector to an sdfx vector.
func ToVec(v vecmath.Vec3) v3.Vec {
	return v3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// FromVec converts an sdfx vector to a core vector, rounding to float32.
func FromVec(v v3.Vec) vecmath.Vec3 {
	return vecmath.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// ToBox3 converts core bounds to an sdfx box.
func ToBox3(b spatial.Bounds) sdf.Box3 {
	return sdf.Box3{Min: ToVec(b.Mins), Max: ToVec(b.Maxs)}
}

// FromBox3 converts an sdfx box to core bounds.
func FromBox3(b sdf.Box3) spatial.Bounds {
	return spatial.Bounds{Mins: FromVec(b.Min), Maxs: FromVec(b.Max)}
}

type solid struct {
	s sdf.SDF3
}

// Bounds returns the axis-aligned bounding box.
func (s *solid) Bounds() spatial.Bounds {
	return FromBox3(s.s.BoundingBox())
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct {
	// Cells is the marching cubes resolution used by ToMesh.
	Cells int
}

// New returns a Kernel that meshes with DefaultMeshCells.
func New() *Kernel {
	return &Kernel{Cells: DefaultMeshCells}
}

func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*solid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &solid{s: s}
}

// Box creates a box with the given dimensions and its minimum corner at
// the origin. sdf.Box3D centers the box, so it is shifted by half its size.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// BoxFromBounds creates a box filling b.
func (k *Kernel) BoxFromBounds(b spatial.Bounds) kernel.Solid {
	size := vecmath.Sub(b.Maxs, b.Mins)
	box := k.Box(float64(size[0]), float64(size[1]), float64(size[2]))
	return k.Translate(box, float64(b.Mins[0]), float64(b.Mins[1]), float64(b.Mins[2]))
}

// Cylinder creates a Z-aligned cylinder centered on the origin.
// The segments parameter is ignored since SDF represents smooth surfaces.
func (k *Kernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return wrap(s)
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around the X, Y and Z
// axes, applied in that order.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
// Each triangle gets its own three vertices carrying the face normal.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	cells := k.Cells
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(unwrap(s), renderer)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("sdfx: solid produced no triangles at %d cells", cells)
	}

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := FromVec(tri.Normal())
		for j := 0; j < 3; j++ {
			v := FromVec(tri[j])
			vertices = append(vertices, v[0], v[1], v[2])
			normals = append(normals, n[0], n[1], n[2])
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

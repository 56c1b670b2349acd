package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/qgeom/pkg/kernel"
	"github.com/chazu/qgeom/pkg/spatial"
	"github.com/chazu/qgeom/pkg/vecmath"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func assertBounds(t *testing.T, got spatial.Bounds, wantMins, wantMaxs vecmath.Vec3, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got.Mins[i]-wantMins[i])) > tol {
			t.Errorf("mins[%d] = %f, want ~%f", i, got.Mins[i], wantMins[i])
		}
		if math.Abs(float64(got.Maxs[i]-wantMaxs[i])) > tol {
			t.Errorf("maxs[%d] = %f, want ~%f", i, got.Maxs[i], wantMaxs[i])
		}
	}
}

func TestConversions(t *testing.T) {
	v := vecmath.Vec3{1.5, -2, 3.25}
	if got := FromVec(ToVec(v)); got != v {
		t.Errorf("FromVec(ToVec(%v)) = %v", v, got)
	}
	if got := ToVec(v); got != (v3.Vec{X: 1.5, Y: -2, Z: 3.25}) {
		t.Errorf("ToVec = %v", got)
	}

	b := spatial.Bounds{Mins: vecmath.Vec3{-1, -2, -3}, Maxs: vecmath.Vec3{4, 5, 6}}
	box := ToBox3(b)
	if box.Min != (v3.Vec{X: -1, Y: -2, Z: -3}) || box.Max != (v3.Vec{X: 4, Y: 5, Z: 6}) {
		t.Errorf("ToBox3 = %v", box)
	}
	if got := FromBox3(box); got != b {
		t.Errorf("FromBox3(ToBox3(b)) = %v, want %v", got, b)
	}
	if got := FromBox3(sdf.Box3{Min: v3.Vec{X: 0.1}, Max: v3.Vec{X: 0.2}}); got.Mins[0] != 0.1 {
		t.Errorf("FromBox3 rounding: mins[0] = %v, want 0.1", got.Mins[0])
	}
}

func TestBoxBounds(t *testing.T) {
	k := New()
	assertBounds(t, k.Box(100, 50, 25).Bounds(),
		vecmath.Vec3{0, 0, 0}, vecmath.Vec3{100, 50, 25}, 0.01)
}

func TestBoxFromBounds(t *testing.T) {
	k := New()
	b := spatial.Bounds{Mins: vecmath.Vec3{-10, 5, 2}, Maxs: vecmath.Vec3{10, 7, 12}}
	assertBounds(t, k.BoxFromBounds(b).Bounds(), b.Mins, b.Maxs, 0.01)
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Translate(k.Box(10, 10, 10), 100, 200, 300)
	assertBounds(t, box.Bounds(),
		vecmath.Vec3{100, 200, 300}, vecmath.Vec3{110, 210, 310}, 0.01)
}

func TestRotate(t *testing.T) {
	k := New()
	box := k.Box(100, 10, 10)

	// A long box along X rotated 90 degrees around Z extends along Y.
	b := k.Rotate(box, 0, 0, 90).Bounds()
	size := b.Size()

	const tol = 1.0
	if math.Abs(float64(size[0])-10) > tol {
		t.Errorf("rotated X extent = %f, want ~10", size[0])
	}
	if math.Abs(float64(size[1])-100) > tol {
		t.Errorf("rotated Y extent = %f, want ~100", size[1])
	}
}

func TestCylinderBounds(t *testing.T) {
	k := New()
	assertBounds(t, k.Cylinder(50, 10, 32).Bounds(),
		vecmath.Vec3{-10, -10, -25}, vecmath.Vec3{10, 10, 25}, 0.01)
}

func TestToMesh(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	triCount := mesh.TriangleCount()
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}

	// Vertices land within a couple of cells of the surface.
	tol := 2 * 100.0 / DefaultMeshCells
	assertBounds(t, mesh.Bounds(),
		vecmath.Vec3{0, 0, 0}, vecmath.Vec3{100, 50, 25}, tol)
}

func TestDifferenceAddsTriangles(t *testing.T) {
	k := New()

	box := k.Box(100, 100, 100)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}

	hole := k.Translate(k.Cylinder(120, 20, 32), 50, 50, 50)
	diffMesh, err := k.ToMesh(k.Difference(box, hole))
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestUnionAndIntersection(t *testing.T) {
	k := New()
	a := k.Box(50, 50, 50)
	b := k.Translate(k.Box(50, 50, 50), 30, 0, 0)

	assertBounds(t, k.Union(a, b).Bounds(),
		vecmath.Vec3{0, 0, 0}, vecmath.Vec3{80, 50, 50}, 0.01)

	mesh, err := k.ToMesh(k.Intersection(a, b))
	if err != nil {
		t.Fatalf("ToMesh(intersection) failed: %v", err)
	}
	// The overlap is the slab 30 <= x <= 50.
	tol := float32(2 * 80.0 / DefaultMeshCells)
	mb := mesh.Bounds()
	if mb.Mins[0] < 30-tol || mb.Maxs[0] > 50+tol {
		t.Errorf("intersection mesh spans x %f..%f, want ~30..50", mb.Mins[0], mb.Maxs[0])
	}
}

func TestClassifySolids(t *testing.T) {
	k := New()
	p := spatial.NewPlane(vecmath.Vec3{1, 0, 0}, 20)

	tests := []struct {
		name string
		s    kernel.Solid
		want spatial.Side
	}{
		{"beyond", k.Translate(k.Box(10, 10, 10), 25, 0, 0), spatial.SideFront},
		{"before", k.Box(10, 10, 10), spatial.SideBack},
		{"across", k.Box(40, 10, 10), spatial.SideCross},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kernel.Classify(tt.s, &p); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

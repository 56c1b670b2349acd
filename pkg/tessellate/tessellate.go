// Package tessellate turns the solids emitted by a script into triangle
// meshes using a geometry kernel. One mesh is produced per solid.
package tessellate

import (
	"fmt"

	"github.com/chazu/qgeom/pkg/engine"
	"github.com/chazu/qgeom/pkg/kernel"
	"github.com/dgravesa/go-parallel/parallel"
)

// Tessellate meshes every solid with k and returns the meshes in input
// order, each named after its solid. Solids are meshed concurrently; the
// kernel must be safe for concurrent ToMesh calls on distinct solids.
// The first failure in input order is returned and no meshes are.
func Tessellate(solids []engine.NamedSolid, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if len(solids) == 0 {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, len(solids))
	errs := make([]error, len(solids))
	parallel.For(len(solids), func(i, _ int) {
		meshes[i], errs[i] = meshSolid(k, solids[i], i)
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return meshes, nil
}

func meshSolid(k kernel.Kernel, s engine.NamedSolid, index int) (*kernel.Mesh, error) {
	if s.Solid == nil {
		return nil, fmt.Errorf("tessellate: solid %d (%q) is nil", index, s.Name)
	}
	mesh, err := k.ToMesh(s.Solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for %q: %w", s.Name, err)
	}

	// Prefer the emitted name, fall back to the index.
	if s.Name != "" {
		mesh.Name = s.Name
	} else {
		mesh.Name = fmt.Sprintf("solid-%d", index)
	}
	return mesh, nil
}

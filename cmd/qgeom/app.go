package main

import (
	"log"

	"github.com/chazu/qgeom/pkg/engine"
	"github.com/chazu/qgeom/pkg/kernel"
	"github.com/chazu/qgeom/pkg/kernel/sdfx"
	"github.com/chazu/qgeom/pkg/spatial"
	"github.com/chazu/qgeom/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to emitted solids.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App ties the scripting engine to the kernel that meshes its output.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel

	// Clip, when non-empty, drops emitted solids that lie entirely behind
	// any of the planes before meshing.
	Clip []spatial.Plane
}

// MeshData is the JSON-serializable mesh format written by the command.
type MeshData struct {
	Name     string     `json:"name"`
	Color    string     `json:"color"`
	Mins     [3]float32 `json:"mins"`
	Maxs     [3]float32 `json:"maxs"`
	Vertices []float32  `json:"vertices"`
	Normals  []float32  `json:"normals"`
	Indices  []uint32   `json:"indices"`
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Value  string          `json:"value"`
	Meshes []MeshData      `json:"meshes"`
	Culled []string        `json:"culled"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates an App with an engine and the sdfx kernel at the given
// marching cubes resolution. cells <= 0 selects sdfx.DefaultMeshCells.
func NewApp(cells int) *App {
	k := sdfx.New()
	if cells > 0 {
		k.Cells = cells
	}
	return &App{
		engine: engine.NewEngineWithKernel(k),
		kernel: k,
	}
}

// Evaluate takes Lisp source and returns the printed value, one mesh per
// emitted solid, and any errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes: []MeshData{},
		Culled: []string{},
		Errors: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source.
	res, evalErrs, err := a.engine.EvaluateResult(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the output format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	result.Value = res.Value

	// Step 3: Drop solids outside the clip volume.
	solids := res.Solids
	if len(a.Clip) > 0 {
		all := make([]kernel.Solid, len(solids))
		for i, s := range solids {
			all[i] = s.Solid
		}
		keep := kernel.Cull(all, a.Clip)
		kept := make([]engine.NamedSolid, 0, len(keep))
		next := 0
		for i, s := range solids {
			if next < len(keep) && keep[next] == i {
				kept = append(kept, s)
				next++
				continue
			}
			result.Culled = append(result.Culled, s.Name)
		}
		solids = kept
	}

	// Step 4: Tessellate the remaining solids into triangle meshes.
	meshes, err := tessellate.Tessellate(solids, a.kernel)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 5: Convert kernel meshes to the output format.
	for i, m := range meshes {
		b := m.Bounds()
		result.Meshes = append(result.Meshes, MeshData{
			Name:     m.Name,
			Color:    colorPalette[i%len(colorPalette)],
			Mins:     b.Mins,
			Maxs:     b.Maxs,
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
		})
	}

	return result
}

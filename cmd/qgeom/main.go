// Command qgeom evaluates a geometry script and writes the printed value and
// the meshes of every emitted solid as JSON.
//
// Usage:
//
//	qgeom [flags] [script]
//
// The script is read from the named file (".zy" is assumed when the name has
// no extension), from -e, or from standard input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chazu/qgeom/pkg/engine"
	"github.com/chazu/qgeom/pkg/glob"
	"github.com/chazu/qgeom/pkg/qpath"
	"github.com/chazu/qgeom/pkg/spatial"
	"github.com/chazu/qgeom/pkg/token"
	"github.com/chazu/qgeom/pkg/vecmath"
)

const scriptExtension = ".zy"

// planeList collects repeated -clip flags.
type planeList []spatial.Plane

func (l *planeList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = fmt.Sprintf("%g,%g,%g,%g", p.Normal[0], p.Normal[1], p.Normal[2], p.Dist)
	}
	return strings.Join(parts, " ")
}

func (l *planeList) Set(s string) error {
	p, err := parsePlane(s)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// parsePlane reads "nx,ny,nz,dist"; whitespace may separate the fields
// instead of commas. The normal is normalized.
func parsePlane(s string) (spatial.Plane, error) {
	fields := token.Split(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 4 {
		return spatial.Plane{}, fmt.Errorf("plane %q: want nx,ny,nz,dist", s)
	}
	var f [4]float32
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return spatial.Plane{}, fmt.Errorf("plane %q: %w", s, err)
		}
		f[i] = float32(v)
	}
	n := vecmath.Vec3{f[0], f[1], f[2]}
	if n.Normalize() == 0 {
		return spatial.Plane{}, fmt.Errorf("plane %q: zero normal", s)
	}
	return spatial.NewPlane(n, f[3]), nil
}

// readSource picks the script from -e, a file argument or stdin.
func readSource(expr string, args []string, stdin io.Reader) (name, source string, err error) {
	switch {
	case expr != "":
		return "-e", expr, nil
	case len(args) > 0:
		path := qpath.DefaultExtension(args[0], scriptExtension)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return qpath.FileBase(path), string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return "stdin", string(data), nil
	}
}

// filterMeshes keeps meshes whose name matches pattern.
func filterMeshes(meshes []MeshData, pattern string) []MeshData {
	if pattern == "" {
		return meshes
	}
	out := meshes[:0]
	for _, m := range meshes {
		if glob.Match(pattern, m.Name) {
			out = append(out, m)
		}
	}
	return out
}

func main() {
	var clip planeList
	expr := flag.String("e", "", "evaluate `source` instead of a file")
	timeout := flag.Duration("timeout", engine.EvalTimeout, "evaluation timeout")
	cells := flag.Int("cells", 0, "marching cubes resolution (0 for the kernel default)")
	only := flag.String("only", "", "keep only meshes whose name matches the glob `pattern`")
	indent := flag.Bool("indent", false, "indent JSON output")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Var(&clip, "clip", "drop solids behind the plane `nx,ny,nz,dist` (repeatable)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("qgeom: ")

	name, source, err := readSource(*expr, flag.Args(), os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	app := NewApp(*cells)
	app.engine.Timeout = *timeout
	app.Clip = clip

	start := time.Now()
	result := app.Evaluate(source)
	result.Meshes = filterMeshes(result.Meshes, *only)
	if *verbose {
		log.Printf("%s: %d meshes, %d culled, %d errors in %s",
			name, len(result.Meshes), len(result.Culled), len(result.Errors), time.Since(start).Round(time.Millisecond))
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			if e.Line > 0 {
				log.Printf("%s:%d: %s", name, e.Line, e.Message)
			} else {
				log.Printf("%s: %s", name, e.Message)
			}
		}
		os.Exit(1)
	}
}

package engine

import (
	"strconv"
	"testing"
)

// eval runs source on a fresh engine and fails the test on any error.
func eval(t *testing.T, source string) string {
	t.Helper()
	v, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	return v
}

// evalFloat evaluates source and parses the printed number.
func evalFloat(t *testing.T, source string) float64 {
	t.Helper()
	v := eval(t, source)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		t.Fatalf("result %q is not a number: %v", v, err)
	}
	return f
}

// ---------------------------------------------------------------------------
// Vector builtins
// ---------------------------------------------------------------------------

func TestVectorBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"vec3", `(vec3 1 2 3)`, "(vec3 1 2 3)"},
		{"vec3 floats", `(vec3 0.5 -1.25 3)`, "(vec3 0.5 -1.25 3)"},
		{"dot", `(dot (vec3 1 2 3) (vec3 4 5 6))`, "32"},
		{"cross", `(cross (vec3 1 0 0) (vec3 0 1 0))`, "(vec3 0 0 1)"},
		{"add", `(add (vec3 1 2 3) (vec3 4 5 6))`, "(vec3 5 7 9)"},
		{"sub", `(sub (vec3 1 2 3) (vec3 4 5 6))`, "(vec3 -3 -3 -3)"},
		{"scale", `(scale (vec3 1 2 3) 2)`, "(vec3 2 4 6)"},
		{"length", `(length (vec3 3 4 0))`, "5"},
		{"normalize", `(normalize (vec3 0 0 5))`, "(vec3 0 0 1)"},
		{"normalize zero", `(normalize (vec3 0 0 0))`, "(vec3 0 0 0)"},
		{"perpendicular of z", `(perpendicular (vec3 0 0 1))`, "(vec3 1 0 0)"},
		{"variables", "(def a (vec3 1 1 0))\n(def b (vec3 0 1 1))\n(dot a b)", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eval(t, tt.source); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestRotateAround(t *testing.T) {
	d := evalFloat(t, `
(def r (rotate-around (vec3 0 0 1) (vec3 1 0 0) 90))
(length (sub r (vec3 0 1 0)))
`)
	if d > 1e-5 {
		t.Errorf("rotated point is %g from (0, 1, 0)", d)
	}
}

// ---------------------------------------------------------------------------
// Plane and bounds builtins
// ---------------------------------------------------------------------------

func TestPlaneBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"positional plane", `(plane (vec3 0 0 1) 10)`, "(plane (vec3 0 0 1) 10)"},
		{"keyword plane", `(plane :dist 4 :normal (vec3 1 0 0))`, "(plane (vec3 1 0 0) 4)"},
		{"plane type axial", `(plane-type (vec3 1 0 0))`, "0"},
		{"plane type of plane", `(plane-type (plane (vec3 0 0 1) 3))`, "2"},
		{"plane type mostly x", `(plane-type (normalize (vec3 0.9 0.1 0.1)))`, "3"},
		{"plane type negative z", `(plane-type (vec3 0 0 -1))`, "5"},
		{"signbits", `(signbits (vec3 -1 -1 0))`, "3"},
		{"signbits of plane", `(signbits (plane (vec3 0 0 -1) 0))`, "4"},
		{"distance", `(distance (plane (vec3 0 0 1) 10) (vec3 5 5 15))`, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eval(t, tt.source); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestBoundsAccumulate(t *testing.T) {
	got := eval(t, `
(def b (bounds))
(add-point b (vec3 1 2 3))
(add-point b (vec3 -1 5 0))
b
`)
	if want := "(bounds (vec3 -1 2 0) (vec3 1 5 3))"; got != want {
		t.Errorf("bounds = %q, want %q", got, want)
	}

	if got := eval(t, `(bounds)`); got != "(bounds (vec3 99999 99999 99999) (vec3 -99999 -99999 -99999))" {
		t.Errorf("cleared bounds = %q", got)
	}
}

func TestBoxOnPlaneSideBuiltins(t *testing.T) {
	tests := []struct {
		name string
		box  string
		want string
	}{
		{"front", `(bounds (vec3 1 -1 -1) (vec3 2 1 1))`, "1"},
		{"back", `(bounds (vec3 -2 -1 -1) (vec3 -1 1 1))`, "2"},
		{"cross", `(bounds (vec3 -1 -1 -1) (vec3 1 1 1))`, "3"},
	}

	for _, tt := range tests {
		for _, fn := range []string{"box-on-plane-side", "box-on-plane-side2"} {
			t.Run(tt.name+"/"+fn, func(t *testing.T) {
				src := "(" + fn + " " + tt.box + " (plane (normalize (vec3 1 0.1 0)) 0))"
				if got := eval(t, src); got != tt.want {
					t.Errorf("%s = %q, want %q", src, got, tt.want)
				}
			})
		}
	}
}

// ---------------------------------------------------------------------------
// Angle builtins
// ---------------------------------------------------------------------------

func TestAngleBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"lerp across zero", `(lerp-angle 350 10 0.5)`, "0"},
		{"lerp start", `(lerp-angle 90 180 0)`, "90"},
		{"anglemod", `(anglemod 370)`, "9.99755859375"},
		{"anglemod exact", `(anglemod 90)`, "90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eval(t, tt.source); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestAngleVectorBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"forward at yaw 90", `(length (sub (forward (vec3 0 90 0)) (vec3 0 1 0)))`},
		{"right at rest", `(length (sub (right (vec3 0 0 0)) (vec3 0 -1 0)))`},
		{"up at rest", `(length (sub (up (vec3 0 0 0)) (vec3 0 0 1)))`},
		{"forward pitched down", `(length (sub (forward (vec3 90 0 0)) (vec3 0 0 -1)))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := evalFloat(t, tt.source); d > 1e-5 {
				t.Errorf("%s = %g, want ~0", tt.source, d)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Solid builtins
// ---------------------------------------------------------------------------

func TestSolidBounds(t *testing.T) {
	got := eval(t, `(solid-bounds (translate (solid-box 10 20 30) (vec3 1 2 3)))`)
	if want := "(bounds (vec3 1 2 3) (vec3 11 22 33))"; got != want {
		t.Errorf("solid-bounds = %q, want %q", got, want)
	}
}

func TestClassifyBuiltin(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"beyond", `(classify (translate (solid-box 10 10 10) (vec3 20 0 0)) (plane (vec3 1 0 0) 5))`, "1"},
		{"before", `(classify (solid-box 4 10 10) (plane (vec3 1 0 0) 5))`, "2"},
		{"across", `(classify (solid-box 10 10 10) (plane (vec3 1 0 0) 5))`, "3"},
		{"union spans", `(classify (union (solid-box 1 1 1) (translate (solid-box 1 1 1) (vec3 9 0 0))) (plane (vec3 1 0 0) 5))`, "3"},
		{"cylinder", `(classify (solid-cylinder :height 10 :radius 2) (plane (vec3 0 0 1) 6))`, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eval(t, tt.source); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Emitted solids
// ---------------------------------------------------------------------------

func TestEmitCollectsSolids(t *testing.T) {
	source := `
(def base (solid-box 10 10 2))
(emit "base" base)
(emit "post" (translate (solid-box 2 2 8) (vec3 4 4 2)))
(+ 1 1)`
	res, evalErrs, err := NewEngine().EvaluateResult(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if res.Value != "2" {
		t.Errorf("value = %q, want %q", res.Value, "2")
	}
	if len(res.Solids) != 2 {
		t.Fatalf("got %d solids, want 2", len(res.Solids))
	}
	if res.Solids[0].Name != "base" || res.Solids[1].Name != "post" {
		t.Errorf("names = %q, %q, want base, post", res.Solids[0].Name, res.Solids[1].Name)
	}
	b := res.Solids[1].Solid.Bounds()
	if b.Mins[2] != 2 || b.Maxs[2] != 10 {
		t.Errorf("post z range = %v..%v, want 2..10", b.Mins[2], b.Maxs[2])
	}
}

func TestEmitReturnsSolid(t *testing.T) {
	got := eval(t, `(solid-bounds (emit "a" (solid-box 1 2 3)))`)
	if want := "(bounds (vec3 0 0 0) (vec3 1 2 3))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitDoesNotLeakBetweenEvaluations(t *testing.T) {
	e := NewEngine()
	if _, _, err := e.EvaluateResult(`(emit "a" (solid-box 1 1 1))`); err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	res, _, err := e.EvaluateResult(`(+ 1 2)`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(res.Solids) != 0 {
		t.Errorf("second evaluation has %d solids, want 0", len(res.Solids))
	}
}

// ---------------------------------------------------------------------------
// Argument errors
// ---------------------------------------------------------------------------

func TestBuiltinArgumentErrors(t *testing.T) {
	sources := []string{
		`(vec3 1 2)`,
		`(vec3 1 2 "three")`,
		`(dot (vec3 1 2 3) 4)`,
		`(plane)`,
		`(add-point (bounds) 7)`,
		`(box-on-plane-side (vec3 1 2 3) (plane (vec3 1 0 0) 0))`,
		`(solid-box 1 0 1)`,
		`(solid-cylinder :radius 2)`,
		`(classify (vec3 1 2 3) (plane (vec3 1 0 0) 0))`,
		`(emit (solid-box 1 1 1))`,
		`(emit 7 (solid-box 1 1 1))`,
		`(emit "a" (solid-box 1 1 1)) (emit "a" (solid-box 2 2 2))`,
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			_, evalErrs, err := NewEngine().Evaluate(src)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected an eval error")
			}
			if evalErrs[0].Message == "" {
				t.Error("eval error should have a non-empty message")
			}
		})
	}
}

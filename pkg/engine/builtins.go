package engine

import (
	"fmt"
	"strconv"

	"github.com/chazu/qgeom/pkg/kernel"
	"github.com/chazu/qgeom/pkg/spatial"
	"github.com/chazu/qgeom/pkg/vecmath"
	"github.com/chazu/qgeom/pkg/xform"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatVec3(v vecmath.Vec3) string {
	return fmt.Sprintf("(vec3 %s %s %s)", formatFloat32(v[0]), formatFloat32(v[1]), formatFloat32(v[2]))
}

// sexpVec3 wraps a vecmath.Vec3.
type sexpVec3 struct {
	vec vecmath.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string { return formatVec3(v.vec) }
func (v *sexpVec3) Type() *zygo.RegisteredType            { return nil }

// sexpPlane wraps a spatial.Plane with its derived type and sign bits.
type sexpPlane struct {
	plane spatial.Plane
}

func (p *sexpPlane) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(plane %s %s)", formatVec3(p.plane.Normal), formatFloat32(p.plane.Dist))
}
func (p *sexpPlane) Type() *zygo.RegisteredType { return nil }

// sexpBounds wraps a spatial.Bounds. add-point mutates it in place.
type sexpBounds struct {
	bounds spatial.Bounds
}

func (b *sexpBounds) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(bounds %s %s)", formatVec3(b.bounds.Mins), formatVec3(b.bounds.Maxs))
}
func (b *sexpBounds) Type() *zygo.RegisteredType { return nil }

// sexpSolid wraps a kernel.Solid.
type sexpSolid struct {
	solid kernel.Solid
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	b := s.solid.Bounds()
	return fmt.Sprintf("(solid %s %s)", formatVec3(b.Mins), formatVec3(b.Maxs))
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toFloat32(s zygo.Sexp) (float32, error) {
	f, err := toFloat64(s)
	return float32(f), err
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (vecmath.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return vecmath.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toPlane(s zygo.Sexp) (*spatial.Plane, error) {
	if p, ok := s.(*sexpPlane); ok {
		return &p.plane, nil
	}
	return nil, fmt.Errorf("expected plane, got %T (%s)", s, s.SexpString(nil))
}

func toBounds(s zygo.Sexp) (*sexpBounds, error) {
	if b, ok := s.(*sexpBounds); ok {
		return b, nil
	}
	return nil, fmt.Errorf("expected bounds, got %T (%s)", s, s.SexpString(nil))
}

func toSolid(s zygo.Sexp) (kernel.Solid, error) {
	if v, ok := s.(*sexpSolid); ok {
		return v.solid, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

// toNormal accepts either a plane or a bare normal vector.
func toNormal(s zygo.Sexp) (vecmath.Vec3, error) {
	switch v := s.(type) {
	case *sexpPlane:
		return v.plane.Normal, nil
	case *sexpVec3:
		return v.vec, nil
	}
	return vecmath.Vec3{}, fmt.Errorf("expected plane or vec3, got %T (%s)", s, s.SexpString(nil))
}

func toVec3Pair(name string, args []zygo.Sexp) (a, b vecmath.Vec3, err error) {
	if len(args) != 2 {
		return a, b, fmt.Errorf("%s requires exactly 2 arguments, got %d", name, len(args))
	}
	if a, err = toVec3(args[0]); err != nil {
		return a, b, fmt.Errorf("%s: first: %w", name, err)
	}
	if b, err = toVec3(args[1]); err != nil {
		return a, b, fmt.Errorf("%s: second: %w", name, err)
	}
	return a, b, nil
}

func toSolidPair(name string, args []zygo.Sexp) (a, b kernel.Solid, err error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s requires exactly 2 arguments, got %d", name, len(args))
	}
	if a, err = toSolid(args[0]); err != nil {
		return nil, nil, fmt.Errorf("%s: first: %w", name, err)
	}
	if b, err = toSolid(args[1]); err != nil {
		return nil, nil, fmt.Errorf("%s: second: %w", name, err)
	}
	return a, b, nil
}

func number(f float32) zygo.Sexp {
	return &zygo.SexpFloat{Val: float64(f)}
}

func integer(i int64) zygo.Sexp {
	return &zygo.SexpInt{Val: i}
}

func vec(v vecmath.Vec3) zygo.Sexp {
	return &sexpVec3{vec: v}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the geometry builtins into a zygomys environment.
// Solid builtins build through k and emit appends to out.Solids.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens and kebab-case names match the registered builtins.
func registerBuiltins(env *zygo.Zlisp, k kernel.Kernel, out *Result) {
	registerVectorBuiltins(env)
	registerPlaneBuiltins(env)
	registerAngleBuiltins(env)
	registerSolidBuiltins(env, k, out)
}

func registerVectorBuiltins(env *zygo.Zlisp) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v vecmath.Vec3
		for i, axis := range []string{"x", "y", "z"} {
			f, err := toFloat32(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %s: %w", axis, err)
			}
			v[i] = f
		}
		return vec(v), nil
	})

	// -----------------------------------------------------------------------
	// (dot a b) (cross a b) (add a b) (sub a b)
	// -----------------------------------------------------------------------
	env.AddFunction("dot", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := toVec3Pair("dot", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return number(vecmath.Dot(a, b)), nil
	})
	env.AddFunction("cross", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := toVec3Pair("cross", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return vec(vecmath.Cross(a, b)), nil
	})
	env.AddFunction("add", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := toVec3Pair("add", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return vec(vecmath.Add(a, b)), nil
	})
	env.AddFunction("sub", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a, b, err := toVec3Pair("sub", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return vec(vecmath.Sub(a, b)), nil
	})

	// -----------------------------------------------------------------------
	// (scale v 2.5)
	// -----------------------------------------------------------------------
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("scale requires a vector and a factor")
		}
		v, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: vector: %w", err)
		}
		s, err := toFloat32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: factor: %w", err)
		}
		return vec(vecmath.Scale(v, s)), nil
	})

	// -----------------------------------------------------------------------
	// (normalize v) (length v) (perpendicular v)
	// -----------------------------------------------------------------------
	env.AddFunction("normalize", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("normalize requires exactly 1 argument, got %d", len(args))
		}
		v, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("normalize: %w", err)
		}
		var out vecmath.Vec3
		vecmath.NormalizeTo(v, &out)
		return vec(out), nil
	})
	env.AddFunction("length", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("length requires exactly 1 argument, got %d", len(args))
		}
		v, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("length: %w", err)
		}
		return number(vecmath.Length(v)), nil
	})
	env.AddFunction("perpendicular", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("perpendicular requires exactly 1 argument, got %d", len(args))
		}
		v, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("perpendicular: %w", err)
		}
		return vec(xform.PerpendicularVector(v)), nil
	})

	// -----------------------------------------------------------------------
	// (rotate-around axis point degrees)
	// -----------------------------------------------------------------------
	env.AddFunction("rotate_around", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("rotate-around requires an axis, a point and an angle")
		}
		axis, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-around: axis: %w", err)
		}
		point, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-around: point: %w", err)
		}
		deg, err := toFloat32(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-around: degrees: %w", err)
		}
		return vec(xform.RotatePointAroundVector(axis, point, deg)), nil
	})
}

func registerPlaneBuiltins(env *zygo.Zlisp) {

	// -----------------------------------------------------------------------
	// (plane (vec3 0 0 1) 10)
	// (plane :normal (vec3 0 0 1) :dist 10)
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		normalArg, distArg := pa.kw["normal"], pa.kw["dist"]
		if len(pa.positional) > 0 && normalArg == nil {
			normalArg = pa.positional[0]
		}
		if len(pa.positional) > 1 && distArg == nil {
			distArg = pa.positional[1]
		}
		if normalArg == nil {
			return zygo.SexpNull, fmt.Errorf("plane requires a normal")
		}

		n, err := toVec3(normalArg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: normal: %w", err)
		}
		var dist float32
		if distArg != nil {
			if dist, err = toFloat32(distArg); err != nil {
				return zygo.SexpNull, fmt.Errorf("plane: dist: %w", err)
			}
		}
		return &sexpPlane{plane: spatial.NewPlane(n, dist)}, nil
	})

	// -----------------------------------------------------------------------
	// (plane-type p) (signbits p) -- p may be a plane or a normal
	// -----------------------------------------------------------------------
	env.AddFunction("plane_type", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("plane-type requires exactly 1 argument, got %d", len(args))
		}
		n, err := toNormal(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane-type: %w", err)
		}
		return integer(int64(spatial.PlaneTypeForNormal(n))), nil
	})
	env.AddFunction("signbits", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("signbits requires exactly 1 argument, got %d", len(args))
		}
		n, err := toNormal(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("signbits: %w", err)
		}
		return integer(int64(spatial.SignBitsForNormal(n))), nil
	})

	// -----------------------------------------------------------------------
	// (distance p point)
	// -----------------------------------------------------------------------
	env.AddFunction("distance", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("distance requires a plane and a point")
		}
		p, err := toPlane(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		v, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("distance: %w", err)
		}
		return number(p.DistanceTo(v)), nil
	})

	// -----------------------------------------------------------------------
	// (bounds) (bounds mins maxs) (add-point b point)
	// -----------------------------------------------------------------------
	env.AddFunction("bounds", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		switch len(args) {
		case 0:
			return &sexpBounds{bounds: spatial.ClearBounds()}, nil
		case 2:
			mins, maxs, err := toVec3Pair("bounds", args)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpBounds{bounds: spatial.Bounds{Mins: mins, Maxs: maxs}}, nil
		}
		return zygo.SexpNull, fmt.Errorf("bounds takes no arguments or mins and maxs, got %d", len(args))
	})
	env.AddFunction("add_point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("add-point requires bounds and at least one point")
		}
		b, err := toBounds(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("add-point: %w", err)
		}
		for i, a := range args[1:] {
			v, err := toVec3(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("add-point: point %d: %w", i+1, err)
			}
			b.bounds.AddPoint(v)
		}
		return b, nil
	})

	// -----------------------------------------------------------------------
	// (box-on-plane-side b p) (box-on-plane-side2 b p)
	// Results are 1 (front), 2 (back) or 3 (both).
	// -----------------------------------------------------------------------
	boxSide := func(label string, side func(spatial.Bounds, *spatial.Plane) spatial.Side) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires bounds and a plane", label)
			}
			b, err := toBounds(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			p, err := toPlane(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			return integer(int64(side(b.bounds, p))), nil
		}
	}
	env.AddFunction("box_on_plane_side", boxSide("box-on-plane-side", spatial.BoxOnPlaneSide))
	env.AddFunction("box_on_plane_side2", boxSide("box-on-plane-side2", spatial.BoxOnPlaneSide2))
}

func registerAngleBuiltins(env *zygo.Zlisp) {

	// -----------------------------------------------------------------------
	// (forward angles) (right angles) (up angles)
	// angles is (vec3 pitch yaw roll) in degrees.
	// -----------------------------------------------------------------------
	basis := func(label string, pick func(f, r, u vecmath.Vec3) vecmath.Vec3) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", label, len(args))
			}
			angles, err := toVec3(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: angles: %w", label, err)
			}
			var f, r, u vecmath.Vec3
			xform.AngleVectors(angles, &f, &r, &u)
			return vec(pick(f, r, u)), nil
		}
	}
	env.AddFunction("forward", basis("forward", func(f, _, _ vecmath.Vec3) vecmath.Vec3 { return f }))
	env.AddFunction("right", basis("right", func(_, r, _ vecmath.Vec3) vecmath.Vec3 { return r }))
	env.AddFunction("up", basis("up", func(_, _, u vecmath.Vec3) vecmath.Vec3 { return u }))

	// -----------------------------------------------------------------------
	// (lerp-angle from to frac) (anglemod a)
	// -----------------------------------------------------------------------
	env.AddFunction("lerp_angle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("lerp-angle requires from, to and frac")
		}
		var v [3]float32
		for i, label := range []string{"from", "to", "frac"} {
			f, err := toFloat32(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("lerp-angle: %s: %w", label, err)
			}
			v[i] = f
		}
		return number(xform.LerpAngle(v[0], v[1], v[2])), nil
	})
	env.AddFunction("anglemod", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("anglemod requires exactly 1 argument, got %d", len(args))
		}
		a, err := toFloat32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("anglemod: %w", err)
		}
		return number(xform.AngleMod(a)), nil
	})
}

func registerSolidBuiltins(env *zygo.Zlisp, k kernel.Kernel, out *Result) {

	// -----------------------------------------------------------------------
	// (solid-box 10 20 30) (solid-cylinder :height 50 :radius 10)
	// -----------------------------------------------------------------------
	env.AddFunction("solid_box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("solid-box requires exactly 3 dimensions, got %d", len(args))
		}
		var d [3]float64
		for i := range d {
			f, err := toFloat64(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solid-box: dimension %d: %w", i, err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("solid-box: dimension %d must be positive, got %g", i, f)
			}
			d[i] = f
		}
		return &sexpSolid{solid: k.Box(d[0], d[1], d[2])}, nil
	})
	env.AddFunction("solid_cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var height, radius float64
		for _, p := range []struct {
			key string
			dst *float64
		}{{"height", &height}, {"radius", &radius}} {
			v, ok := pa.kw[p.key]
			if !ok {
				return zygo.SexpNull, fmt.Errorf("solid-cylinder requires :%s", p.key)
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solid-cylinder: %s: %w", p.key, err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("solid-cylinder: %s must be positive, got %g", p.key, f)
			}
			*p.dst = f
		}
		return &sexpSolid{solid: k.Cylinder(height, radius, 0)}, nil
	})

	// -----------------------------------------------------------------------
	// (union a b) (difference a b) (intersection a b)
	// -----------------------------------------------------------------------
	boolean := func(label string, op func(a, b kernel.Solid) kernel.Solid) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			a, b, err := toSolidPair(label, args)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpSolid{solid: op(a, b)}, nil
		}
	}
	env.AddFunction("union", boolean("union", k.Union))
	env.AddFunction("difference", boolean("difference", k.Difference))
	env.AddFunction("intersection", boolean("intersection", k.Intersection))

	// -----------------------------------------------------------------------
	// (translate s (vec3 x y z)) (rotate s (vec3 rx ry rz))
	// -----------------------------------------------------------------------
	transform := func(label string, op func(s kernel.Solid, x, y, z float64) kernel.Solid) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires a solid and a vec3", label)
			}
			s, err := toSolid(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			v, err := toVec3(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			return &sexpSolid{solid: op(s, float64(v[0]), float64(v[1]), float64(v[2]))}, nil
		}
	}
	env.AddFunction("translate", transform("translate", k.Translate))
	env.AddFunction("rotate", transform("rotate", k.Rotate))

	// -----------------------------------------------------------------------
	// (solid-bounds s) (classify s p)
	// -----------------------------------------------------------------------
	env.AddFunction("solid_bounds", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("solid-bounds requires exactly 1 argument, got %d", len(args))
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid-bounds: %w", err)
		}
		return &sexpBounds{bounds: s.Bounds()}, nil
	})
	env.AddFunction("classify", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("classify requires a solid and a plane")
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("classify: %w", err)
		}
		p, err := toPlane(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("classify: %w", err)
		}
		return integer(int64(kernel.Classify(s, p))), nil
	})
	// -----------------------------------------------------------------------
	// (emit "name" s)
	// -----------------------------------------------------------------------
	env.AddFunction("emit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("emit requires a name and a solid")
		}
		str, ok := args[0].(*zygo.SexpStr)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("emit: name: expected string, got %T (%s)", args[0], args[0].SexpString(nil))
		}
		s, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("emit: %w", err)
		}
		for _, prev := range out.Solids {
			if prev.Name == str.S {
				return zygo.SexpNull, fmt.Errorf("emit: duplicate name %q", str.S)
			}
		}
		out.Solids = append(out.Solids, NamedSolid{Name: str.S, Solid: s})
		return args[1], nil
	})
}

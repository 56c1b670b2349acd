// Package engine provides a Lisp scripting front end to the geometry core.
// It wraps zygomys in a sandboxed environment preloaded with vector, plane,
// bounds, rotation and solid builtins, and returns the printed value of
// the last expression.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/qgeom/pkg/kernel"
	"github.com/chazu/qgeom/pkg/kernel/sdfx"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// NamedSolid is a solid handed out of a script with (emit "name" solid).
type NamedSolid struct {
	Name  string
	Solid kernel.Solid
}

// Result is the full output of an evaluation.
type Result struct {
	// Value is the printed value of the last expression.
	Value string
	// Solids lists emitted solids in emission order.
	Solids []NamedSolid
}

// Engine wraps the zygomys interpreter.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	// Timeout bounds a single evaluation.
	Timeout time.Duration

	kernel     kernel.Kernel
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates an Engine backed by the sdfx kernel with the default
// timeout.
func NewEngine() *Engine {
	return NewEngineWithKernel(sdfx.New())
}

// NewEngineWithKernel creates an Engine whose solid builtins use k.
func NewEngineWithKernel(k kernel.Kernel) *Engine {
	return &Engine{Timeout: EvalTimeout, kernel: k}
}

// Evaluate runs Lisp source code and returns the printed value of the last
// expression. Each call creates a fresh zygomys sandbox.
//
// Return semantics:
//   - On success: returns value + nil errors + nil error
//   - On parse/eval failure: returns "" + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns "" + nil + error
func (e *Engine) Evaluate(source string) (string, []EvalError, error) {
	res, evalErrs, err := e.EvaluateResult(source)
	return res.Value, evalErrs, err
}

// EvaluateResult is Evaluate, additionally returning the solids the script
// emitted. The error semantics match Evaluate; on failure the result is
// zero.
func (e *Engine) EvaluateResult(source string) (Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, e.Timeout, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (Result, []EvalError, error) {
	// Empty source is a valid program with no value.
	if strings.TrimSpace(source) == "" {
		return Result{}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	var out Result
	registerBuiltins(env, e.kernel, &out)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return Result{}, parseZygomysError(err), nil
	}

	res, err := env.Run()
	if err != nil {
		return Result{}, parseZygomysError(err), nil
	}

	out.Value = formatSexp(res)
	return out, nil, nil
}

// formatSexp prints a result value. Numbers are printed in their shortest
// round-trip form.
func formatSexp(s zygo.Sexp) string {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return strconv.FormatInt(v.Val, 10)
	case *zygo.SexpFloat:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case *zygo.SexpStr:
		return strconv.Quote(v.S)
	}
	if s == nil {
		return ""
	}
	return s.SexpString(nil)
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}

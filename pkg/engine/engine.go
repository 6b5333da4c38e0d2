// Package engine evaluates parameter scripts for anatomical shells.
// It wraps zygomys in a sandboxed environment and produces an
// anatomy.ParamSet from user source code.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/lvshell/pkg/anatomy"
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

// EvalWarning is an advisory finding about an evaluated parameter set.
type EvalWarning struct {
	Param   string
	Message string
}

func (w EvalWarning) String() string {
	if w.Param != "" {
		return w.Param + ": " + w.Message
	}
	return w.Message
}

// Engine wraps the zygomys interpreter for parameter scripts.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	timeout    time.Duration
}

// NewEngine creates a new Engine with DefaultEvalTimeout.
func NewEngine() *Engine {
	return &Engine{timeout: DefaultEvalTimeout}
}

// WithTimeout sets the evaluation time limit. Non-positive values restore
// DefaultEvalTimeout.
func (e *Engine) WithTimeout(d time.Duration) *Engine {
	if d <= 0 {
		d = DefaultEvalTimeout
	}
	e.mu.Lock()
	e.timeout = d
	e.mu.Unlock()
	return e
}

// Evaluate takes Lisp source code and produces a new parameter set.
// Each call creates a fresh zygomys sandbox for deterministic evaluation.
//
// Return semantics:
//   - On success: returns params + nil errors + nil error
//   - On parse/eval failure: returns nil params + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (anatomy.ParamSet, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	timeout := e.timeout
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		params, evalErrs, err := e.evaluate(source)
		ch <- evalResult{params: params, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, timeout, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (anatomy.ParamSet, []EvalError, error) {
	params := anatomy.ParamSet{}

	// Empty source is a valid program that produces an empty set.
	if strings.TrimSpace(source) == "" {
		return params, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, params)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	_, err = env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	return params, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ...".
// The detail may span several lines when a builtin's error is wrapped.
var linePattern = regexp.MustCompile(`(?is)(?:error )?on line (\d+):\s*(.*)`)

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

// CheckParams reports advisory warnings for the structure named by prefix.
// Missing keys are not reported here; anatomy.ParamsFromSet does that.
func CheckParams(set anatomy.ParamSet, prefix string) []EvalWarning {
	var warnings []EvalWarning

	wallKey := anatomy.Key(prefix, "wall")
	if wall, ok := set[wallKey]; ok && wall <= 0 {
		warnings = append(warnings, EvalWarning{
			Param:   wallKey,
			Message: fmt.Sprintf("wall thickness %g is not positive; the myocardium will be empty", wall),
		})
	}

	c, okC := set[anatomy.Key(prefix, "c_endo")]
	z0, ok0 := set[anatomy.Key(prefix, "z0")]
	z1, ok1 := set[anatomy.Key(prefix, "z1")]
	if okC && ok0 && ok1 && c > 0 && (z1 < -c || z0 > c) {
		warnings = append(warnings, EvalWarning{
			Param:   anatomy.Key(prefix, "z0"),
			Message: fmt.Sprintf("truncation interval [%g, %g] lies outside the endocardium (c=%g)", z0, z1, c),
		})
	}

	return warnings
}

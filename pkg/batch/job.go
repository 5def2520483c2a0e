package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/pkg/geometry"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOp is returned for a step whose op is not recognized
	ErrUnknownOp = errors.New("unknown op")

	// ErrArity is returned when a step has the wrong number of operands
	ErrArity = errors.New("wrong number of operands")
)

// Step is one operation of a job
type Step struct {
	Name      string   `yaml:"name"`
	Op        string   `yaml:"op"`
	Vectors   []string `yaml:"vectors"`
	Rotations []string `yaml:"rotations"`
	Scalar    *float64 `yaml:"scalar"`
	T         *float64 `yaml:"t"`
}

// Label returns the step name, or its op when unnamed
func (s Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Op
}

// Job is a list of steps read from YAML
type Job struct {
	Tolerance *float64 `yaml:"tolerance"`
	Steps     []Step   `yaml:"steps"`
}

// Result is the outcome of one step; exactly one of Value and Err is set
type Result struct {
	Step  Step
	Value string
	Err   error
}

// Load reads a job file
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job: %w", err)
	}
	return Parse(data)
}

// Parse decodes a job from YAML
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	return &job, nil
}

// Runner evaluates jobs
type Runner struct {
	tolerance float64
	format    analysis.Formatter
	logger    *zap.Logger
}

// NewRunner creates a runner using tolerance for comparisons unless a job overrides it
func NewRunner(tolerance float64, format analysis.Formatter, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{tolerance: tolerance, format: format, logger: logger}
}

// Run evaluates every step in order. A failing step is reported in its Result and
// does not stop the rest. Run stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, job *Job) []Result {
	tol := r.tolerance
	if job.Tolerance != nil {
		tol = *job.Tolerance
	}

	results := make([]Result, 0, len(job.Steps))
	for i, step := range job.Steps {
		if ctx.Err() != nil {
			r.logger.Debug("job cancelled", zap.Int("step", i))
			break
		}
		value, err := r.evaluate(step, tol)
		if err != nil {
			r.logger.Debug("step failed", zap.Int("step", i), zap.String("label", step.Label()), zap.Error(err))
		}
		results = append(results, Result{Step: step, Value: value, Err: err})
	}
	return results
}

func (r *Runner) evaluate(step Step, tol float64) (string, error) {
	vs, err := parseAll(step.Vectors, ParseVector)
	if err != nil {
		return "", err
	}
	rs, err := parseAll(step.Rotations, ParseRotation)
	if err != nil {
		return "", err
	}
	f := r.format
	op := strings.ToLower(step.Op)

	switch op {
	case "add":
		if len(vs) < 2 {
			return "", arity(step, "at least 2 vectors")
		}
		sum := vs[0]
		for _, v := range vs[1:] {
			sum = sum.Add(v)
		}
		return f.Vector(sum), nil

	case "sub":
		if len(vs) != 2 {
			return "", arity(step, "2 vectors")
		}
		return f.Vector(vs[0].Sub(vs[1])), nil

	case "scale", "div":
		if len(vs) != 1 || step.Scalar == nil {
			return "", arity(step, "1 vector and a scalar")
		}
		if op == "scale" {
			return f.Vector(geometry.Scale(*step.Scalar, vs[0])), nil
		}
		q, err := vs[0].Div(*step.Scalar)
		if err != nil {
			return "", err
		}
		return f.Vector(q), nil

	case "length":
		if len(vs) != 1 {
			return "", arity(step, "1 vector")
		}
		return f.Scalar(vs[0].Length()), nil

	case "normalize":
		if len(vs) != 1 {
			return "", arity(step, "1 vector")
		}
		n, err := vs[0].Normalize()
		if err != nil {
			return "", err
		}
		return f.Vector(n), nil

	case "dot", "cross", "angle", "parallel", "perpendicular":
		if len(vs) != 2 {
			return "", arity(step, "2 vectors")
		}
		return pairOp(f, op, vs[0], vs[1], tol)

	case "distance-line", "distance-segment", "distance-plane":
		if len(vs) != 3 {
			return "", arity(step, "3 vectors")
		}
		return distanceOp(f, op, vs[0], vs[1], vs[2])

	case "rotate":
		if len(rs) != 1 || len(vs) == 0 {
			return "", arity(step, "1 rotation and at least 1 vector")
		}
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = f.Vector(rs[0].MultVec(v))
		}
		return strings.Join(out, "; "), nil

	case "compose":
		if len(rs) == 0 {
			return "", arity(step, "at least 1 rotation")
		}
		acc := rs[0]
		for _, rot := range rs[1:] {
			acc = acc.Multiply(rot)
		}
		return f.Rotation(acc), nil

	case "same":
		if len(rs) != 2 {
			return "", arity(step, "2 rotations")
		}
		return fmt.Sprint(rs[0].IsSame(rs[1], tol)), nil

	case "slerp":
		if len(rs) != 2 || step.T == nil {
			return "", arity(step, "2 rotations and t")
		}
		return f.Rotation(rs[0].Slerp(rs[1], *step.T)), nil

	case "inspect":
		if len(rs) != 1 {
			return "", arity(step, "1 rotation")
		}
		report := analysis.DescribeRotation(rs[0])
		return fmt.Sprintf("axis %s angle %s deg, yaw-pitch-roll (%s, %s, %s)",
			f.Vector(report.Axis), f.Scalar(report.AngleDegrees),
			f.Scalar(report.Yaw), f.Scalar(report.Pitch), f.Scalar(report.Roll)), nil
	}

	return "", fmt.Errorf("%q: %w", step.Op, ErrUnknownOp)
}

func pairOp(f analysis.Formatter, op string, a, b geometry.Vector3, tol float64) (string, error) {
	switch op {
	case "dot":
		return f.Scalar(a.Dot(b)), nil
	case "cross":
		return f.Vector(a.Cross(b)), nil
	case "angle":
		deg, err := a.AngleDegrees(b)
		if err != nil {
			return "", err
		}
		return f.Scalar(deg), nil
	case "parallel":
		return fmt.Sprint(a.IsParallel(b, tol)), nil
	default:
		return fmt.Sprint(a.IsPerpendicular(b, tol)), nil
	}
}

func distanceOp(f analysis.Formatter, op string, point, a, b geometry.Vector3) (string, error) {
	switch op {
	case "distance-line":
		d, err := point.DistanceToLine(a, b)
		if err != nil {
			return "", err
		}
		return f.Scalar(d), nil
	case "distance-segment":
		return f.Vector(point.DistanceToLineSegment(a, b)), nil
	default:
		d, err := point.DistanceToPlane(a, b)
		if err != nil {
			return "", err
		}
		return f.Scalar(d), nil
	}
}

func parseAll[T any](literals []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(literals))
	for i, s := range literals {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func arity(step Step, want string) error {
	return fmt.Errorf("%s needs %s: %w", step.Op, want, ErrArity)
}

package resample

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrInsufficientData indicates fewer than two usable input points.
	ErrInsufficientData = errors.New("at least two data points are needed for interpolation")

	// ErrInvalidStep indicates a non-positive grid step.
	ErrInvalidStep = errors.New("step size must be a positive number")

	// ErrNonMonotonicY indicates a strictly decreasing adjacent Y pair in the input.
	ErrNonMonotonicY = errors.New("y values must be in non-decreasing order; check for out-of-order rows")
)

// MalformedLineError reports an input line that could not be parsed into an
// (x, y) pair. Line is 1-based and Text is the trimmed original line.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Point is a single (x, y) input pair.
type Point struct {
	X float64
	Y float64
}

// Curve holds paired coordinate sequences of equal length.
type Curve struct {
	X []float64
	Y []float64
}

// Result carries the sorted input curve and the resampled curve produced by
// one call to Resample.
type Result struct {
	Original  Curve
	Resampled Curve
}

// Resample parses raw two-column text and resamples it onto an evenly spaced
// Y grid by piecewise-linear interpolation. The input's first and last points
// are retained in the output even when they fall off-grid.
//
// Resample is pure and holds no state; it is safe to call concurrently.
func Resample(raw string, step float64) (*Result, error) {
	points, err := parsePoints(raw)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, ErrInsufficientData
	}
	if step <= 0 {
		return nil, ErrInvalidStep
	}
	for i := 1; i < len(points); i++ {
		if points[i].Y < points[i-1].Y {
			return nil, ErrNonMonotonicY
		}
	}

	first, last := points[0], points[len(points)-1]

	sorted := make([]Point, len(points))
	copy(sorted, points)
	// Stable so that tied Y values keep their input order.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	knotX := make([]float64, len(sorted))
	knotY := make([]float64, len(sorted))
	for i, p := range sorted {
		knotX[i] = p.X
		knotY[i] = p.Y
	}

	minY, maxY := knotY[0], knotY[len(knotY)-1]
	tol := math.Max(1e-12, step*1e-9)

	// The epsilon counters float rounding at step-count boundaries.
	n := int(math.Floor((maxY-minY)/step+1e-12)) + 1
	gridY := make([]float64, 0, n+3)
	for i := 0; i < n; i++ {
		gridY = append(gridY, minY+float64(i)*step)
	}
	if math.Abs(gridY[len(gridY)-1]-maxY) > tol {
		gridY = append(gridY, maxY)
	}

	out := make([]Point, len(gridY))
	for i, y := range gridY {
		out[i] = Point{X: interp(y, knotY, knotX), Y: y}
	}
	out = retainEndpoint(out, first, tol)
	out = retainEndpoint(out, last, tol)

	res := &Result{
		Original:  Curve{X: knotX, Y: knotY},
		Resampled: Curve{X: make([]float64, len(out)), Y: make([]float64, len(out))},
	}
	for i, p := range out {
		res.Resampled.X[i] = p.X
		res.Resampled.Y[i] = p.Y
	}
	return res, nil
}

// interp evaluates the piecewise-linear curve (knotY -> knotX) at y, clamping
// to the boundary X outside the knot range. knotY must be sorted ascending.
func interp(y float64, knotY, knotX []float64) float64 {
	idx := sort.SearchFloat64s(knotY, y)
	switch {
	case idx == 0:
		return knotX[0]
	case idx == len(knotY):
		return knotX[len(knotX)-1]
	}
	dy := knotY[idx] - knotY[idx-1]
	if dy == 0 {
		// Tied knots: take the left knot's X for a deterministic answer.
		return knotX[idx-1]
	}
	return knotX[idx-1] + (knotX[idx]-knotX[idx-1])*(y-knotY[idx-1])/dy
}

// retainEndpoint inserts p with its true X when no output Y is within tol of
// p.Y, keeping the result sorted ascending by Y.
func retainEndpoint(out []Point, p Point, tol float64) []Point {
	for _, q := range out {
		if math.Abs(q.Y-p.Y) <= tol {
			return out
		}
	}
	out = append(out, p)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Y < out[j].Y })
	return out
}

// parsePoints reads one (x, y) pair per non-blank line, accepting comma or
// whitespace separators. The first malformed line aborts the whole parse.
func parsePoints(raw string) ([]Point, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	points := make([]Point, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(tokens) != 2 {
			return nil, &MalformedLineError{
				Line:   i + 1,
				Text:   line,
				Reason: "must contain exactly two numbers",
			}
		}
		x, err := parseNumber(tokens[0])
		if err != nil {
			return nil, &MalformedLineError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		y, err := parseNumber(tokens[1])
		if err != nil {
			return nil, &MalformedLineError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

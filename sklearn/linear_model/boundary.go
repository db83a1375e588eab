package linear_model

import (
	"fmt"
	"math"
	"strings"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
)

// Point is a coordinate pair in the plane.
type Point struct {
	X, Y float64
}

// Boundary is the line A·x + B·y + C = 0 in implicit form.
//
// The fields are adjusted in place by Perceptron training. Any finite
// coefficients are valid; with A = B = 0 every point evaluates to C.
type Boundary struct {
	A, B, C float64
}

// NewBoundary returns the line a·x + b·y + c = 0.
func NewBoundary(a, b, c float64) Boundary {
	return Boundary{A: a, B: b, C: c}
}

// SignedValue evaluates A·x + B·y + C at p. Its sign tells which half-plane p lies in.
func (b Boundary) SignedValue(p Point) float64 {
	return b.A*p.X + b.B*p.Y + b.C
}

// IsDegenerate reports whether both slope coefficients are zero.
func (b Boundary) IsDegenerate() bool {
	return b.A == 0 && b.B == 0
}

// YAt solves the line for y at x. Renderers need it; classification does not.
// It fails when B is zero because the line is then vertical (or degenerate).
func (b Boundary) YAt(x float64) (float64, error) {
	if b.B == 0 {
		return 0, errors.NewValueError("Boundary.YAt", "b is zero, the line cannot be written as y = f(x)")
	}
	return (-b.C - b.A*x) / b.B, nil
}

// Coefficients returns [A, B, C].
func (b Boundary) Coefficients() []float64 {
	return []float64{b.A, b.B, b.C}
}

// IsFinite reports whether no coefficient is NaN or Inf.
func (b Boundary) IsFinite() bool {
	for _, v := range b.Coefficients() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// String renders the line as "2x + 3y - 6 = 0".
func (b Boundary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%gx", b.A)
	for _, term := range []struct {
		v    float64
		name string
	}{{b.B, "y"}, {b.C, ""}} {
		if term.v < 0 || (term.v == 0 && math.Signbit(term.v)) {
			fmt.Fprintf(&sb, " - %g%s", -term.v, term.name)
		} else {
			fmt.Fprintf(&sb, " + %g%s", term.v, term.name)
		}
	}
	sb.WriteString(" = 0")
	return sb.String()
}

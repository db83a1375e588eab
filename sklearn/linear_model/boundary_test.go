package linear_model

import (
	"math"
	"testing"
)

func TestBoundary_SignedValue(t *testing.T) {
	b := NewBoundary(2, 3, -6)

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"far side", Point{10, 10}, 44},
		{"origin", Point{0, 0}, -6},
		{"on line", Point{3, 0}, 0},
		{"negative coords", Point{-1, -2}, -14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.SignedValue(tt.p); got != tt.want {
				t.Errorf("SignedValue(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundary_Degenerate(t *testing.T) {
	b := NewBoundary(0, 0, -2)
	if !b.IsDegenerate() {
		t.Fatal("a = b = 0 should be degenerate")
	}
	for _, p := range []Point{{0, 0}, {100, -3}, {-7, 42}} {
		if got := b.SignedValue(p); got != -2 {
			t.Errorf("SignedValue(%v) = %v, want c = -2", p, got)
		}
		if got := Classify(p, b); got != AreaB {
			t.Errorf("Classify(%v) = %v, want AreaB", p, got)
		}
	}

	if NewBoundary(0, 1, 0).IsDegenerate() {
		t.Error("b != 0 is not degenerate")
	}
}

func TestBoundary_YAt(t *testing.T) {
	b := NewBoundary(2, 3, -6)
	y, err := b.YAt(0)
	if err != nil {
		t.Fatalf("YAt() error = %v", err)
	}
	if y != 2 {
		t.Errorf("YAt(0) = %v, want 2", y)
	}
	if v := b.SignedValue(Point{X: 4.5, Y: mustYAt(t, b, 4.5)}); math.Abs(v) > 1e-12 {
		t.Errorf("point from YAt is off the line by %v", v)
	}

	if _, err := NewBoundary(1, 0, 3).YAt(1); err == nil {
		t.Error("expected error for b = 0")
	}
}

func mustYAt(t *testing.T, b Boundary, x float64) float64 {
	t.Helper()
	y, err := b.YAt(x)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestBoundary_String(t *testing.T) {
	tests := []struct {
		b    Boundary
		want string
	}{
		{NewBoundary(2, 3, -6), "2x + 3y - 6 = 0"},
		{NewBoundary(1.9, -2.9, 0), "1.9x - 2.9y + 0 = 0"},
		{NewBoundary(-1, 0.5, 4), "-1x + 0.5y + 4 = 0"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBoundary_IsFinite(t *testing.T) {
	if !NewBoundary(1, 2, 3).IsFinite() {
		t.Error("finite boundary reported as non-finite")
	}
	if NewBoundary(math.NaN(), 2, 3).IsFinite() {
		t.Error("NaN coefficient reported as finite")
	}
	if NewBoundary(1, 2, math.Inf(-1)).IsFinite() {
		t.Error("Inf coefficient reported as finite")
	}
}

func TestClassify(t *testing.T) {
	b := NewBoundary(2, 3, -6)

	tests := []struct {
		name string
		p    Point
		want Area
	}{
		{"positive side", Point{10, 10}, AreaA},
		{"negative side", Point{0, 0}, AreaB},
		{"on line x-intercept", Point{3, 0}, OnBoundary},
		{"on line y-intercept", Point{0, 2}, OnBoundary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.p, b)
			if got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
			}
			// deterministic
			if again := Classify(tt.p, b); again != got {
				t.Errorf("Classify is not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestClassify_Total(t *testing.T) {
	boundaries := []Boundary{
		NewBoundary(2, 3, -6),
		NewBoundary(0, 0, 0),
		NewBoundary(-1e300, 1e-300, 5),
	}
	points := []Point{{0, 0}, {1e10, -1e10}, {-3.5, 2.25}, {1e-300, 1e300}}

	for _, b := range boundaries {
		for _, p := range points {
			switch Classify(p, b) {
			case AreaA, AreaB, OnBoundary:
			default:
				t.Errorf("Classify(%v, %v) returned an unknown outcome", p, b)
			}
		}
	}
}

func TestClassAndArea(t *testing.T) {
	if ClassA.Area() != AreaA || ClassB.Area() != AreaB {
		t.Error("class to area mapping is wrong")
	}
	if ClassA.Label() != 1 || ClassB.Label() != -1 || OnBoundary.Label() != 0 {
		t.Error("unexpected numeric labels")
	}
	var zero Class
	if zero.Valid() {
		t.Error("zero Class must not be valid")
	}
	if zero.Area() != OnBoundary {
		t.Error("invalid class should map to OnBoundary")
	}
	if ClassA.String() != "ClassA" || AreaB.String() != "AreaB" || OnBoundary.String() != "OnBoundary" {
		t.Error("unexpected names")
	}

	lp := NewLabeledPoint(1, 2, ClassB)
	if lp.X != 1 || lp.Y != 2 || lp.Label != ClassB {
		t.Errorf("NewLabeledPoint() = %+v", lp)
	}
}

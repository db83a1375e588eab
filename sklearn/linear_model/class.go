package linear_model

// Class is the true label of a training point. Only ClassA and ClassB exist;
// the zero value is not a valid class.
type Class int

const (
	ClassA Class = iota + 1
	ClassB
)

// Classes lists the valid classes in sampling order.
var Classes = [...]Class{ClassA, ClassB}

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassA:
		return "ClassA"
	case ClassB:
		return "ClassB"
	default:
		return "Class(invalid)"
	}
}

// Valid reports whether c is ClassA or ClassB.
func (c Class) Valid() bool {
	return c == ClassA || c == ClassB
}

// Area returns the half-plane a correctly classified point of class c lies in.
func (c Class) Area() Area {
	switch c {
	case ClassA:
		return AreaA
	case ClassB:
		return AreaB
	default:
		return OnBoundary
	}
}

// Label is the numeric label used in gonum label vectors: +1 for ClassA, -1 for ClassB.
func (c Class) Label() float64 {
	return c.Area().Label()
}

// Area is the outcome of classifying a point against a Boundary. It is a
// separate type from Class because a point can also lie on the line itself.
type Area int

const (
	// OnBoundary means the signed value is exactly zero. Such a point is in
	// neither half-plane.
	OnBoundary Area = iota
	// AreaA is the half-plane with a strictly positive signed value.
	AreaA
	// AreaB is the half-plane with a strictly negative signed value.
	AreaB
)

// String returns the outcome name.
func (a Area) String() string {
	switch a {
	case AreaA:
		return "AreaA"
	case AreaB:
		return "AreaB"
	default:
		return "OnBoundary"
	}
}

// Label is +1 for AreaA, -1 for AreaB and 0 for OnBoundary.
func (a Area) Label() float64 {
	switch a {
	case AreaA:
		return 1
	case AreaB:
		return -1
	default:
		return 0
	}
}

// LabeledPoint is a point tagged with its true class.
type LabeledPoint struct {
	Point
	Label Class
}

// NewLabeledPoint returns the point (x, y) labeled with class.
func NewLabeledPoint(x, y float64, class Class) LabeledPoint {
	return LabeledPoint{Point: Point{X: x, Y: y}, Label: class}
}

// Classify places p against b: AreaA when the signed value is positive, AreaB
// when it is negative and OnBoundary when it is exactly zero.
func Classify(p Point, b Boundary) Area {
	v := b.SignedValue(p)
	switch {
	case v > 0:
		return AreaA
	case v < 0:
		return AreaB
	default:
		return OnBoundary
	}
}

package canvas

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a polygonal path in device space.
type Path struct {
	elements   []PathElement
	start      Point // Starting point of current subpath
	current    Point // Current point
	hasCurrent bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasCurrent = true
}

// LineTo draws a line to a point. Without a current point it behaves
// like MoveTo, as a canvas lineTo does on an empty path.
func (p *Path) LineTo(x, y float64) {
	if !p.hasCurrent {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if !p.hasCurrent {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasCurrent = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of all points in the path as min and
// max corners. An empty path reports zero points.
func (p *Path) Bounds() (lo, hi Point) {
	first := true
	for _, e := range p.elements {
		var pt Point
		switch e := e.(type) {
		case MoveTo:
			pt = e.Point
		case LineTo:
			pt = e.Point
		default:
			continue
		}
		if first {
			lo, hi = pt, pt
			first = false
			continue
		}
		lo.X = math.Min(lo.X, pt.X)
		lo.Y = math.Min(lo.Y, pt.Y)
		hi.X = math.Max(hi.X, pt.X)
		hi.Y = math.Max(hi.Y, pt.Y)
	}
	return lo, hi
}

// validate returns ErrNonFinite if any point is NaN or infinite.
func (p *Path) validate() error {
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			if !e.Point.IsFinite() {
				return ErrNonFinite
			}
		case LineTo:
			if !e.Point.IsFinite() {
				return ErrNonFinite
			}
		}
	}
	return nil
}

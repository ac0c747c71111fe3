package canvas

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathLineToWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.LineTo(3, 4)
	p.LineTo(5, 6)

	want := []PathElement{MoveTo{Point: Pt(3, 4)}, LineTo{Point: Pt(5, 6)}}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestPathCloseReturnsToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(4, 1)
	p.Close()
	if got := p.CurrentPoint(); got != Pt(1, 1) {
		t.Errorf("CurrentPoint() after Close = %v, want (1,1)", got)
	}
}

func TestPathCloseOnEmptyPath(t *testing.T) {
	p := NewPath()
	p.Close()
	if !p.IsEmpty() {
		t.Errorf("Close on empty path added %d elements", len(p.Elements()))
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, -2)
	p.LineTo(-3, 7)
	p.LineTo(4, 12)
	p.Close()

	lo, hi := p.Bounds()
	if lo != Pt(-3, -2) || hi != Pt(10, 12) {
		t.Errorf("Bounds() = %v, %v, want (-3,-2), (10,12)", lo, hi)
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.Clear()
	if !p.IsEmpty() || p.HasCurrentPoint() {
		t.Error("Clear() left elements or a current point")
	}
}

func TestPathValidate(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(math.Inf(1), 2)
	if err := p.validate(); !errors.Is(err, ErrNonFinite) {
		t.Errorf("validate() = %v, want ErrNonFinite", err)
	}
}

func TestPointSubLength(t *testing.T) {
	d := Pt(7, 1).Sub(Pt(4, -3))
	if d != Pt(3, 4) || d.Length() != 5 {
		t.Errorf("Sub = %v, Length = %v, want (3, 4) and 5", d, d.Length())
	}
}

package kaleido

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/kaleido/canvas"
)

func TestFlowerRestoresTransform(t *testing.T) {
	dc := newSurface(t, 64, 64)
	dc.SetFillBrush(canvas.Solid(canvas.Red))
	dc.Translate(3, 7)
	dc.Rotate(0.4)
	before := dc.GetTransform()

	if err := Flower(dc, TriangleUnit{Edge: 20}); err != nil {
		t.Fatalf("Flower: %v", err)
	}
	if diff := cmp.Diff(before, dc.GetTransform(), approx); diff != "" {
		t.Errorf("transform after Flower (-want +got):\n%s", diff)
	}
	if dc.Depth() != 0 {
		t.Errorf("Depth() = %d after Flower, want 0", dc.Depth())
	}
}

func TestFlowerCoversHexagon(t *testing.T) {
	const d = 20.0
	u := TriangleUnit{Edge: d}
	dc := newSurface(t, 64, 64)
	dc.SetFillBrush(canvas.Solid(canvas.Blue))
	if err := Flower(dc, u); err != nil {
		t.Fatal(err)
	}

	img, err := dc.GetImageData(0, 0, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	// Centre at (d, h). Sample mid-wedge, away from the seams.
	cx, cy := d, u.Height()
	for _, p := range [][2]int{{20, 5}, {20, 29}, {30, 23}, {10, 11}} {
		if got := img.RGBAAt(p[0], p[1]); got.A != 255 || got.B != 255 {
			t.Errorf("pixel %v = %v, want opaque blue", p, got)
		}
	}
	for _, p := range [][2]int{{int(cx) + 25, int(cy)}, {int(cx), int(cy) + 22}, {60, 60}} {
		if got := img.RGBAAt(p[0], p[1]); got.A != 0 {
			t.Errorf("pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestFlowerInScopeUnwindsOnError(t *testing.T) {
	dc := &faultSurface{Context: newSurface(t, 64, 64), failFillAt: 3}
	dc.SetFillBrush(canvas.Solid(canvas.Red))
	before := dc.GetTransform()

	err := func() error {
		sc := enterScope(dc)
		defer sc.exit()
		return Flower(dc, TriangleUnit{Edge: 20})
	}()
	if !errors.Is(err, errInjected) {
		t.Fatalf("Flower error = %v, want injected fault", err)
	}
	if dc.Depth() != 0 {
		t.Errorf("Depth() = %d after failed Flower, want 0", dc.Depth())
	}
	if diff := cmp.Diff(before, dc.GetTransform(), approx); diff != "" {
		t.Errorf("transform after failed Flower (-want +got):\n%s", diff)
	}
}

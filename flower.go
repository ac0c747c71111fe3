package kaleido

// Flower draws one six-lobed motif with the current fill. The pivot sits
// at (d, h) from the current origin; six wedges are drawn, each after a
// further 60° rotation, so the net rotation on return is zero and the
// origin is restored by the closing translate. On error the transform is
// left mid-rotation: callers wrap Flower in a scope.
func Flower(s Surface, u TriangleUnit) error {
	d, h := u.Edge, u.Height()

	s.Translate(d, h)
	for i := 0; i < petals; i++ {
		s.Rotate(Sixty)
		if err := wedge(s, u); err != nil {
			return err
		}
	}
	s.Translate(-d, -h)
	return nil
}

// wedge fills the triangle with apex at the origin and its base one
// height below, edge d wide. The d/2 translate around the fill shifts
// only where the pattern is sampled.
func wedge(s Surface, u TriangleUnit) error {
	d, h := u.Edge, u.Height()
	off := d / 2

	s.BeginPath()
	s.LineTo(d-off, h)
	s.LineTo(0.5*d-off, 0)
	s.LineTo(-off, h)
	s.ClosePath()

	sc := enterScope(s)
	defer sc.exit()
	s.Translate(off, 0)
	return s.Fill()
}

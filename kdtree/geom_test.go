package kdtree

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func TestNewRect(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name                   string
		xmin, ymin, xmax, ymax float64
		wantErr                bool
	}{
		{"unit", 0, 0, 1, 1, false},
		{"degenerate", 0.5, 0.5, 0.5, 0.5, false},
		{"negative", -2, -3, -1, 4, false},
		{"xInverted", 1, 0, 0, 1, true},
		{"yInverted", 0, 1, 1, 0, true},
		{"nan", math.NaN(), 0, 1, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := NewRect(tc.xmin, tc.ymin, tc.xmax, tc.ymax)
			if tc.wantErr {
				if errors.Cause(err) != ErrInvalidRect {
					t.Errorf("expected ErrInvalidRect, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if r.XMin() != tc.xmin || r.YMin() != tc.ymin || r.XMax() != tc.xmax || r.YMax() != tc.ymax {
				t.Errorf("bounds: got %v", r)
			}
		})
	}
}

func TestRectContainsIntersects(t *testing.T) {
	t.Parallel()
	r := Rect{Min: Point{0, 0}, Max: Point{0.5, 0.5}}

	for _, p := range []Point{{0, 0}, {0.5, 0.5}, {0.25, 0.5}, {0.1, 0.2}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false", p)
		}
	}
	for _, p := range []Point{{0.51, 0}, {-0.01, 0.2}, {0.2, 0.6}} {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true", p)
		}
	}

	touching := Rect{Min: Point{0.5, 0.5}, Max: Point{1, 1}}
	if !r.Intersects(touching) || !touching.Intersects(r) {
		t.Error("touching rectangles must intersect")
	}
	apart := Rect{Min: Point{0.6, 0}, Max: Point{1, 1}}
	if r.Intersects(apart) {
		t.Error("disjoint rectangles intersect")
	}
	if !Plane.Intersects(r) || !r.Intersects(Plane) {
		t.Error("Plane must intersect everything")
	}
}

func TestRectSplit(t *testing.T) {
	t.Parallel()

	lo, hi := UnitSquare.split(AxisX, 0.3)
	if lo != (Rect{Min: Point{0, 0}, Max: Point{0.3, 1}}) || hi != (Rect{Min: Point{0.3, 0}, Max: Point{1, 1}}) {
		t.Errorf("x split: %v %v", lo, hi)
	}
	lo, hi = UnitSquare.split(AxisY, 0.6)
	if lo != (Rect{Min: Point{0, 0}, Max: Point{1, 0.6}}) || hi != (Rect{Min: Point{0, 0.6}, Max: Point{1, 1}}) {
		t.Errorf("y split: %v %v", lo, hi)
	}
}

func TestPointDistance(t *testing.T) {
	t.Parallel()
	p, q := Point{0, 0}, Point{3, 4}

	if d := p.DistanceTo(q); d != 5 {
		t.Errorf("DistanceTo: got %v", d)
	}
	if d := p.DistanceSquaredTo(q); d != 25 {
		t.Errorf("DistanceSquaredTo: got %v", d)
	}
	if !p.Equal(Point{0, 0}) || p.Equal(q) {
		t.Error("Equal")
	}
	if p.String() != "(0, 0)" || q.String() != "(3, 4)" {
		t.Errorf("String: %s %s", p, q)
	}
}

func TestOrbRoundTrip(t *testing.T) {
	t.Parallel()
	b := orb.Bound{Min: orb.Point{-1, 2}, Max: orb.Point{3, 4}}
	r := RectFromBound(b)
	if r.XMin() != -1 || r.YMin() != 2 || r.XMax() != 3 || r.YMax() != 4 {
		t.Errorf("RectFromBound: %v", r)
	}
	if !r.Bound().Equal(b) {
		t.Errorf("Bound: %v", r.Bound())
	}
}

func TestAxis(t *testing.T) {
	t.Parallel()
	if AxisX.next() != AxisY || AxisY.next() != AxisX {
		t.Error("next must alternate")
	}
	p := Point{1, 2}
	if p.coord(AxisX) != 1 || p.coord(AxisY) != 2 {
		t.Error("coord")
	}
	if AxisX.String() != "x" || AxisY.String() != "y" {
		t.Error("String")
	}
}

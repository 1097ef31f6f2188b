package kdtree

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

type (
	// Pointは、平面上の点を表す。X, Yの組で比較され、値としてコピーされる。
	Point struct {
		X float64
		Y float64
	}

	// Rectは、軸に平行な閉じた長方形。境界上の点も含まれる。
	Rect struct {
		Min Point
		Max Point
	}

	// Axisは、ノードの分割線の向き。AxisXは縦線（xで分割）、AxisYは横線（yで分割）。
	Axis int
)

const (
	AxisX Axis = iota
	AxisY
)

var (
	// UnitSquareは、描画に使う既定の範囲 [0,1]x[0,1]。
	UnitSquare = Rect{Min: Point{0, 0}, Max: Point{1, 1}}

	// Planeは、平面全体。ルートの領域として使う。
	Plane = Rect{
		Min: Point{math.Inf(-1), math.Inf(-1)},
		Max: Point{math.Inf(1), math.Inf(1)},
	}
)

// Point

func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// Equalは、両方の座標が一致する場合にtrueを返す。
func (p Point) Equal(q Point) bool {
	return p.Orb().Equal(q.Orb())
}

// DistanceToは、qまでのユークリッド距離を返す。
func (p Point) DistanceTo(q Point) float64 {
	return planar.Distance(p.Orb(), q.Orb())
}

// DistanceSquaredToは、qまでの距離の二乗を返す。大小比較だけならこちらで足りる。
func (p Point) DistanceSquaredTo(q Point) float64 {
	return planar.DistanceSquared(p.Orb(), q.Orb())
}

// hypotToは、二乗を経由せずに距離を求める。DistanceSquaredToが溢れる大きな座標用。
func (p Point) hypotTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// coordは、軸aの座標を返す。
func (p Point) coord(a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Axis

// nextは、一段深いノードの軸を返す。
func (a Axis) next() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Rect

// NewRectは、[xmin, xmax]x[ymin, ymax] の長方形を作る。
// 下限が上限を超える場合やNaNを含む場合はErrInvalidRectを返す。
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	for _, v := range [...]float64{xmin, ymin, xmax, ymax} {
		if math.IsNaN(v) {
			return Rect{}, errors.Wrap(ErrInvalidRect, "NaN bound")
		}
	}
	if xmin > xmax || ymin > ymax {
		return Rect{}, errors.Wrapf(ErrInvalidRect, "[%g, %g]x[%g, %g]", xmin, xmax, ymin, ymax)
	}
	return Rect{Min: Point{xmin, ymin}, Max: Point{xmax, ymax}}, nil
}

func RectFromBound(b orb.Bound) Rect {
	return Rect{
		Min: Point{b.Min.X(), b.Min.Y()},
		Max: Point{b.Max.X(), b.Max.Y()},
	}
}

func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: r.Min.Orb(), Max: r.Max.Orb()}
}

func (r Rect) XMin() float64 { return r.Min.X }
func (r Rect) YMin() float64 { return r.Min.Y }
func (r Rect) XMax() float64 { return r.Max.X }
func (r Rect) YMax() float64 { return r.Max.Y }

// Containsは、pが長方形の内部または境界上にある場合にtrueを返す。
func (r Rect) Contains(p Point) bool {
	return r.Bound().Contains(p.Orb())
}

// Intersectsは、二つの長方形が共有点を持つ（接しているだけでもよい）場合にtrueを返す。
func (r Rect) Intersects(other Rect) bool {
	return r.Bound().Intersects(other.Bound())
}

func (r Rect) String() string {
	return "[" + r.Min.String() + ", " + r.Max.String() + "]"
}

// splitは、軸aの座標cにある分割線でrを二つに分け、小さい側と大きい側を返す。
// 分割線そのものは両方に含まれる。
func (r Rect) split(a Axis, c float64) (lo, hi Rect) {
	lo, hi = r, r
	if a == AxisX {
		lo.Max.X = c
		hi.Min.X = c
	} else {
		lo.Max.Y = c
		hi.Min.Y = c
	}
	return lo, hi
}

package kdtree

import (
	"math"
	"sort"
)

type (
	// Indexは、KdTreeとPointSetに共通の問い合わせ面。
	Index interface {
		Insert(p *Point) error
		Contains(p *Point) (bool, error)
		Range(r *Rect) ([]Point, error)
		Nearest(p *Point) (Point, bool, error)
		Len() int
	}

	// PointSetは、mapだけで実装した総当たりの点集合。KdTreeの比較対象として使う。
	PointSet struct {
		mp map[Point]struct{}
	}
)

var (
	_ Index = (*KdTree)(nil)
	_ Index = (*PointSet)(nil)
)

func NewPointSet() *PointSet {
	return &PointSet{mp: make(map[Point]struct{})}
}

func (s *PointSet) Insert(p *Point) error {
	if p == nil {
		return ErrNilPoint
	}
	s.mp[*p] = struct{}{}
	return nil
}

func (s *PointSet) Contains(p *Point) (bool, error) {
	if p == nil {
		return false, ErrNilPoint
	}
	_, ok := s.mp[*p]
	return ok, nil
}

// Rangeは、rに含まれる点を(x, y)の昇順で返す。
func (s *PointSet) Range(r *Rect) ([]Point, error) {
	if r == nil {
		return nil, ErrNilRect
	}
	out := make([]Point, 0)
	for _, p := range s.Points() {
		if r.Contains(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Nearestは、すべての点との距離を比べる。距離が等しい場合は(x, y)の小さい点を返す。
func (s *PointSet) Nearest(p *Point) (Point, bool, error) {
	if p == nil {
		return Point{}, false, ErrNilPoint
	}
	var (
		best   Point
		bestSq float64
		found  bool
	)
	for _, q := range s.Points() {
		d := p.DistanceSquaredTo(q)
		switch {
		case !found:
			best, bestSq, found = q, d, true
		case math.IsInf(d, 1) && math.IsInf(bestSq, 1):
			if p.hypotTo(q) < p.hypotTo(best) {
				best = q
			}
		case d < bestSq:
			best, bestSq = q, d
		}
	}
	return best, found, nil
}

func (s *PointSet) Len() int {
	return len(s.mp)
}

// Pointsは、すべての点を(x, y)の昇順で返す。
func (s *PointSet) Points() []Point {
	out := make([]Point, 0, len(s.mp))
	for p := range s.mp {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func (s *PointSet) Close() {
	s.mp = nil
}

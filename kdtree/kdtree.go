// Package kdtreeは、平面上の点を格納する2d-treeを実装する。
//
// 各ノードは深さに応じて交互にx軸・y軸で平面を分割する（ルートはx）。
// 左の部分木の点は分割軸上でノードの点より真に小さく、右の部分木の点は以上である。
// 木の形は挿入順だけで決まり、平衡化や削除は行わない。
//
// KdTreeは複数のゴルーチンからの同時変更に対して安全ではない。
// Insertが実行中でなければ、読み取り操作（Contains, Range, Nearest）は同時に呼び出せる。
package kdtree

import "math"

type (
	// nodeは、一つの点と高々二つの子を持つ。子は親だけが所有する。
	// 分割軸はノードに保存せず、探索時に深さから渡す。
	node struct {
		value Point
		left  *node
		right *node
	}

	// KdTreeは、2d-treeの実装である。
	KdTree struct {
		length int
		root   *node
	}
)

// Newは、空のKdTreeを作る。ゼロ値のKdTreeもそのまま使える。
func New() *KdTree {
	return &KdTree{}
}

// Lenは、現在ツリーにある点の数を返す。重複した点は数えない。
func (t *KdTree) Len() int {
	return t.length
}

func (t *KdTree) IsEmpty() bool {
	return t.length == 0
}

// Insertは、pのコピーをツリーに追加する。同じ点がすでにある場合は何もしない。
// pがnilの場合はErrNilPointを返し、ツリーは変更されない。
func (t *KdTree) Insert(p *Point) error {
	if p == nil {
		return ErrNilPoint
	}
	if t.root == nil {
		t.root = &node{value: *p}
		t.length++
		return nil
	}
	if t.root.insert(*p, AxisX) {
		t.length++
	}
	return nil
}

// insertは、nを根とする部分木にpを葉として追加し、追加した場合にtrueを返す。
// aはnの分割軸。
func (n *node) insert(p Point, a Axis) bool {
	if p.Equal(n.value) {
		return false
	}
	if p.coord(a) < n.value.coord(a) {
		if n.left == nil {
			n.left = &node{value: p}
			return true
		}
		return n.left.insert(p, a.next())
	}
	if n.right == nil {
		n.right = &node{value: p}
		return true
	}
	return n.right.insert(p, a.next())
}

// Containsは、pがツリーにある場合にtrueを返す。
func (t *KdTree) Contains(p *Point) (bool, error) {
	if p == nil {
		return false, ErrNilPoint
	}
	return t.root.has(*p, AxisX), nil
}

// hasはInsertと同じ経路をたどる。pがあり得るのはその経路上だけである。
func (n *node) has(p Point, a Axis) bool {
	for n != nil {
		if p.Equal(n.value) {
			return true
		}
		if p.coord(a) < n.value.coord(a) {
			n = n.left
		} else {
			n = n.right
		}
		a = a.next()
	}
	return false
}

// Rangeは、rに含まれる（境界上を含む）すべての点のコピーを返す。
// 順序は前順（ノード、左、右）で、変更のないツリーに対しては毎回同じになる。
func (t *KdTree) Range(r *Rect) ([]Point, error) {
	out := make([]Point, 0)
	err := t.RangeFunc(r, func(p Point) bool {
		out = append(out, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RangeFuncは、rに含まれる点ごとにiterを呼び出す。iterがfalseを返すと直ちに終了する。
func (t *KdTree) RangeFunc(r *Rect, iter PointIterator) error {
	if r == nil {
		return ErrNilRect
	}
	s := &rangeSearch{query: *r, iter: iter}
	s.visit(t.root, AxisX, Plane)
	return nil
}

// rangeSearchは、範囲探索の途中状態。visitedは訪れたノードの数。
type rangeSearch struct {
	query   Rect
	iter    PointIterator
	visited int
}

// visitは、regionをnの部分木が入り得る領域として、queryと交わる子だけを訪れる。
// 領域はノードに保存せず、一段ごとに一辺だけ縮めて引数で渡す。
func (s *rangeSearch) visit(n *node, a Axis, region Rect) bool {
	if n == nil {
		return true
	}
	s.visited++
	if s.query.Contains(n.value) && !s.iter(n.value) {
		return false
	}
	lo, hi := region.split(a, n.value.coord(a))
	if n.left != nil && s.query.Intersects(lo) {
		if !s.visit(n.left, a.next(), lo) {
			return false
		}
	}
	if n.right != nil && s.query.Intersects(hi) {
		if !s.visit(n.right, a.next(), hi) {
			return false
		}
	}
	return true
}

// nearestSearchは、最近傍探索の途中状態。
// 距離の二乗が+Infに溢れた場合だけ、math.Hypotで比べ直す。
type nearestSearch struct {
	query   Point
	best    Point
	bestSq  float64
	visited int
}

// Nearestは、pに最も近い点を返す。ツリーが空の場合、二番目の戻り値はfalseになる。
// 距離が等しい候補が複数ある場合は、先に見つかった点を返す。
func (t *KdTree) Nearest(p *Point) (Point, bool, error) {
	if p == nil {
		return Point{}, false, ErrNilPoint
	}
	if t.root == nil {
		return Point{}, false, nil
	}
	s := &nearestSearch{
		query:  *p,
		best:   t.root.value,
		bestSq: p.DistanceSquaredTo(t.root.value),
	}
	s.visit(t.root, AxisX)
	return s.best, true, nil
}

// visitは、queryと同じ側の部分木を先に探索し、
// 分割線までの距離が現在の最良より小さい場合だけ反対側を探索する。
func (s *nearestSearch) visit(n *node, a Axis) {
	if n == nil {
		return
	}
	s.visited++
	s.consider(n.value)

	c := n.value.coord(a)
	near, far := n.right, n.left
	if s.query.coord(a) < c {
		near, far = n.left, n.right
	}
	s.visit(near, a.next())

	// 反対側の点はどれも、分割線上の (c, query.y) または (query.x, c) より近くならない。
	if s.beyond(s.query.coord(a) - c) {
		s.visit(far, a.next())
	}
}

// considerは、pが現在の最良より真に近い場合に最良を置き換える。
func (s *nearestSearch) consider(p Point) {
	d := s.query.DistanceSquaredTo(p)
	if math.IsInf(d, 1) && math.IsInf(s.bestSq, 1) {
		if s.query.hypotTo(p) < s.query.hypotTo(s.best) {
			s.best = p
		}
		return
	}
	if d < s.bestSq {
		s.best, s.bestSq = p, d
	}
}

// beyondは、現在の最良が分割線（queryから軸方向にdiff）より遠い場合にtrueを返す。
func (s *nearestSearch) beyond(diff float64) bool {
	if math.IsInf(s.bestSq, 1) {
		return s.query.hypotTo(s.best) > math.Abs(diff)
	}
	return s.bestSq > diff*diff
}

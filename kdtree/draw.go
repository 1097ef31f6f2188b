package kdtree

// Canvasは、ツリーを描画する先。描画は探索結果に影響しない。
type Canvas interface {
	// Splitは、分割線のうちノードの領域に収まる部分（aからb）を描く。
	Split(a, b Point, axis Axis)
	// Dotは、格納された点を描く。
	Dot(p Point)
}

// Drawは、UnitSquareの範囲でツリーをcに描く。
func (t *KdTree) Draw(c Canvas) {
	t.DrawIn(c, UnitSquare)
}

// DrawInは、boundsの範囲でツリーをcに描く。
// 各ノードについて、前順で分割線、点の順に描く。分割線はノードの領域で切り取られる。
func (t *KdTree) DrawIn(c Canvas, bounds Rect) {
	if t.root == nil {
		return
	}
	t.root.draw(c, AxisX, bounds)
}

func (n *node) draw(c Canvas, a Axis, region Rect) {
	v := clamp(n.value.coord(a), region.Min.coord(a), region.Max.coord(a))
	if a == AxisX {
		c.Split(Point{v, region.Min.Y}, Point{v, region.Max.Y}, a)
	} else {
		c.Split(Point{region.Min.X, v}, Point{region.Max.X, v}, a)
	}
	c.Dot(n.value)

	lo, hi := region.split(a, v)
	if n.left != nil {
		n.left.draw(c, a.next(), lo)
	}
	if n.right != nil {
		n.right.draw(c, a.next(), hi)
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

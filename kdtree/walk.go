package kdtree

import (
	"fmt"
	"io"
	"strings"
)

// PointIteratorは、Walk*の呼び出し元がツリーの点を順番に処理することを可能にする。
// この関数がfalseを返すと、処理は停止し、関連する関数は直ちに戻る。
type PointIterator func(p Point) bool

// Walkは、前順（ノード、左、右）ですべての点についてiterを呼び出す。
func (t *KdTree) Walk(iter PointIterator) {
	if t.root == nil {
		return
	}
	t.root.walk(iter)
}

func (n *node) walk(iter PointIterator) bool {
	if !iter(n.value) {
		return false
	}
	if n.left != nil && !n.left.walk(iter) {
		return false
	}
	if n.right != nil && !n.right.walk(iter) {
		return false
	}
	return true
}

// Pointsは、前順ですべての点のコピーを返す。
func (t *KdTree) Points() []Point {
	out := make([]Point, 0, t.length)
	t.Walk(func(p Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Heightは、ツリーの段数を返す。空のツリーでは0。
func (t *KdTree) Height() int {
	return t.root.height()
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// Cloneは、ツリーの複製を作る。ノードは共有されないので、
// 呼び出しが完了した後は元のツリーと新しいツリーを独立に変更できる。
func (t *KdTree) Clone() *KdTree {
	return &KdTree{
		length: t.length,
		root:   t.root.clone(),
	}
}

func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// Clearは、すべての点を取り除く。ノードはGoの通常のGC処理に委ねられる。
func (t *KdTree) Clear() {
	t.root, t.length = nil, 0
}

// Dumpは、ツリーの構造をwに書き出す。テスト/デバッグのために使用される。
func (t *KdTree) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	t.root.print(w, "", 0, AxisX)
}

func (n *node) print(w io.Writer, side string, level int, a Axis) {
	fmt.Fprintf(w, "%s%sNODE:%v split=%v\n", strings.Repeat("  ", level), side, n.value, a)
	if n.left != nil {
		n.left.print(w, "L ", level+1, a.next())
	}
	if n.right != nil {
		n.right.print(w, "R ", level+1, a.next())
	}
}

/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package kdtree

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/seipan/kdtree/kdtree"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kdtree",
		Short: "Compare a 2d-tree against a brute-force point set",
		Long: `kdtree inserts points into a 2d-tree and into a map-backed point set,
times contains, range and nearest queries on both, and checks that both
structures give the same answers.`,
		SilenceUsage: true,
		RunE:         runBench,
	}
	addPointFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().Int("queries", 1000, "number of random queries per operation")

	rootCmd.AddCommand(newRangeCmd(), newNearestCmd(), newDrawCmd())
	return rootCmd
}

func runBench(cmd *cobra.Command, args []string) error {
	src, err := pointSourceFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	n, err := cmd.Flags().GetInt("queries")
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.Errorf("invalid --queries %d", n)
	}
	pts, err := src.load()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	// 同じseedから作るので、問い合わせの点は最初に生成した点と重なる
	q := newQueries(src.prng(), n)

	set := kdtree.NewPointSet()
	defer set.Close()
	tree := kdtree.New()

	for _, idx := range []struct {
		name  string
		index kdtree.Index
	}{
		{"default map", set},
		{"kdtree", tree},
	} {
		for _, step := range []struct {
			op  string
			fnc func(kdtree.Index) error
		}{
			{"create", func(i kdtree.Index) error { return InsertAll(i, pts) }},
			{"contains", func(i kdtree.Index) error { _, err := ContainsAll(i, q.points); return err }},
			{"range", func(i kdtree.Index) error { _, err := RangeAll(i, q.rects); return err }},
			{"nearest", func(i kdtree.Index) error { _, err := NearestAll(i, q.points); return err }},
		} {
			d, err := Measurer(w, idx.name+" "+step.op, idx.index, step.fnc)
			if err != nil {
				return err
			}
			log.Println(idx.name, step.op, d)
		}
	}

	if err := Verify(set, tree, q); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d points (%d distinct), height %d: results match\n", len(pts), tree.Len(), tree.Height())
	return nil
}

// queriesは、両方の構造に同じ順で投げる問い合わせ。
type queries struct {
	points []kdtree.Point
	rects  []kdtree.Rect
}

func newQueries(prng *rand.Rand, n int) queries {
	q := queries{points: randomPoints(prng, n), rects: make([]kdtree.Rect, n)}
	for i := range q.rects {
		x0, x1 := prng.Float64(), prng.Float64()
		y0, y1 := prng.Float64(), prng.Float64()
		q.rects[i] = kdtree.Rect{
			Min: kdtree.Point{X: min(x0, x1), Y: min(y0, y1)},
			Max: kdtree.Point{X: max(x0, x1), Y: max(y0, y1)},
		}
	}
	return q
}

func InsertAll(idx kdtree.Index, pts []kdtree.Point) error {
	for i := range pts {
		if err := idx.Insert(&pts[i]); err != nil {
			return errors.Wrapf(err, "insert %v", pts[i])
		}
	}
	return nil
}

func ContainsAll(idx kdtree.Index, pts []kdtree.Point) ([]bool, error) {
	out := make([]bool, len(pts))
	for i := range pts {
		ok, err := idx.Contains(&pts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "contains %v", pts[i])
		}
		out[i] = ok
	}
	return out, nil
}

func RangeAll(idx kdtree.Index, rects []kdtree.Rect) ([][]kdtree.Point, error) {
	out := make([][]kdtree.Point, len(rects))
	for i := range rects {
		pts, err := idx.Range(&rects[i])
		if err != nil {
			return nil, errors.Wrapf(err, "range %v", rects[i])
		}
		out[i] = pts
	}
	return out, nil
}

// NearestAllは、各点の最近傍を返す。空の構造では要素はnilになる。
func NearestAll(idx kdtree.Index, pts []kdtree.Point) ([]*kdtree.Point, error) {
	out := make([]*kdtree.Point, len(pts))
	for i := range pts {
		p, ok, err := idx.Nearest(&pts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "nearest %v", pts[i])
		}
		if ok {
			out[i] = &p
		}
	}
	return out, nil
}

// Verifyは、wantとgotが同じ問い合わせに同じ答えを返すことを確かめる。
// Rangeは集合として、Nearestは距離で比べる。
func Verify(want, got kdtree.Index, q queries) error {
	if want.Len() != got.Len() {
		return errors.Errorf("size mismatch: %d != %d", want.Len(), got.Len())
	}

	wc, err := ContainsAll(want, q.points)
	if err != nil {
		return err
	}
	gc, err := ContainsAll(got, q.points)
	if err != nil {
		return err
	}
	for i := range wc {
		if wc[i] != gc[i] {
			return errors.Errorf("contains %v: %v != %v", q.points[i], wc[i], gc[i])
		}
	}

	wr, err := RangeAll(want, q.rects)
	if err != nil {
		return err
	}
	gr, err := RangeAll(got, q.rects)
	if err != nil {
		return err
	}
	for i := range wr {
		if !samePoints(wr[i], gr[i]) {
			return errors.Errorf("range %v: %v != %v", q.rects[i], wr[i], gr[i])
		}
	}

	wn, err := NearestAll(want, q.points)
	if err != nil {
		return err
	}
	gn, err := NearestAll(got, q.points)
	if err != nil {
		return err
	}
	for i, p := range q.points {
		if (wn[i] == nil) != (gn[i] == nil) {
			return errors.Errorf("nearest %v: presence differs", p)
		}
		if wn[i] != nil && p.DistanceSquaredTo(*wn[i]) != p.DistanceSquaredTo(*gn[i]) {
			return errors.Errorf("nearest %v: %v != %v", p, *wn[i], *gn[i])
		}
	}
	return nil
}

func samePoints(a, b []kdtree.Point) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[kdtree.Point]int, len(a))
	for _, p := range a {
		seen[p]++
	}
	for _, p := range b {
		if seen[p] == 0 {
			return false
		}
		seen[p]--
	}
	return true
}

func Measurer(w io.Writer, label string, idx kdtree.Index, fnc func(kdtree.Index) error) (time.Duration, error) {
	fmt.Fprintf(w, "--------------------------- %s ---------------------------\n", label)
	start := time.Now()
	err := fnc(idx)
	end := time.Now()
	return end.Sub(start), err
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

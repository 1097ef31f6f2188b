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
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/seipan/kdtree/kdtree"
	"github.com/spf13/pflag"
)

// pointSourceは、ツリーに入れる点をどこから得るかを表す。
type pointSource struct {
	n     int
	seed  uint64
	input string
}

func addPointFlags(fs *pflag.FlagSet) {
	fs.StringP("N", "N", "", "number of random points in the tree")
	fs.Uint64("seed", 1, "seed for random points and queries")
	fs.StringP("input", "i", "", "file of whitespace-separated x y pairs")
}

func pointSourceFromFlags(fs *pflag.FlagSet) (pointSource, error) {
	var src pointSource
	key, err := fs.GetString("N")
	if err != nil {
		return src, err
	}
	if src.seed, err = fs.GetUint64("seed"); err != nil {
		return src, err
	}
	if src.input, err = fs.GetString("input"); err != nil {
		return src, err
	}

	switch {
	case key != "" && src.input != "":
		return src, errors.New("-N and --input are mutually exclusive")
	case key == "" && src.input == "":
		return src, errors.New("either -N or --input is required")
	case key != "":
		if src.n, err = strconv.Atoi(key); err != nil {
			return src, errors.Wrapf(err, "invalid -N %q", key)
		}
		if src.n < 0 {
			return src, errors.Errorf("invalid -N %d", src.n)
		}
	}
	return src, nil
}

func (s pointSource) prng() *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
}

// loadは、入力ファイルを読むか、単位正方形内の乱数の点をn個作る。
func (s pointSource) load() ([]kdtree.Point, error) {
	if s.input == "" {
		return randomPoints(s.prng(), s.n), nil
	}
	f, err := os.Open(s.input)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open input")
	}
	defer f.Close()

	pts, err := readPoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", s.input)
	}
	return pts, nil
}

func randomPoints(prng *rand.Rand, n int) []kdtree.Point {
	pts := make([]kdtree.Point, n)
	for i := range pts {
		pts[i] = kdtree.Point{X: prng.Float64(), Y: prng.Float64()}
	}
	return pts
}

// readPointsは、各行の空白区切りの数値を x y の組として読む。
func readPoints(r io.Reader) ([]kdtree.Point, error) {
	var pts []kdtree.Point
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("line %d: odd number of coordinates", line)
		}
		for i := 0; i < len(fields); i += 2 {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			y, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			pts = append(pts, kdtree.Point{X: x, Y: y})
		}
	}
	return pts, errors.Wrap(sc.Err(), "scan")
}

// parseFloatsは、"a,b,..." をちょうどn個の数値として読む。
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("%q: want %d comma-separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%q", s)
		}
		out[i] = v
	}
	return out, nil
}

func parsePoint(s string) (kdtree.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return kdtree.Point{}, err
	}
	return kdtree.Point{X: v[0], Y: v[1]}, nil
}

func parseRect(s string) (kdtree.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return kdtree.Rect{}, err
	}
	return kdtree.NewRect(v[0], v[1], v[2], v[3])
}

// buildTreeは、srcの点をすべて入れたツリーを返す。
func buildTree(src pointSource) (*kdtree.KdTree, error) {
	pts, err := src.load()
	if err != nil {
		return nil, err
	}
	tree := kdtree.New()
	if err := InsertAll(tree, pts); err != nil {
		return nil, err
	}
	return tree, nil
}

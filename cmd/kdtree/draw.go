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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/seipan/kdtree/kdtree"
	"github.com/spf13/cobra"
)

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render the tree as SVG",
		Long: `draw renders the unit square with every splitting line of the tree:
vertical splits in red, horizontal splits in blue and points in black.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pointSourceFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			size, err := cmd.Flags().GetFloat64("size")
			if err != nil {
				return err
			}
			if size <= 0 {
				return errors.Errorf("invalid --size %g", size)
			}
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			tree, err := buildTree(src)
			if err != nil {
				return err
			}

			if out != "" && out != "-" {
				return writeSVGFile(out, tree, size)
			}
			return errors.Wrap(writeSVG(cmd.OutOrStdout(), tree, size), "unable to write svg")
		},
	}
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	cmd.Flags().Float64("size", 512, "width and height in pixels")
	return cmd
}

// writeSVGFileは、pathにSVGを書く。Closeの失敗も書き込みの失敗として返す。
func writeSVGFile(path string, tree *kdtree.KdTree, size float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "unable to close output")
		}
	}()
	return errors.Wrap(writeSVG(f, tree, size), "unable to write svg")
}

func writeSVG(w io.Writer, tree *kdtree.KdTree, size float64) error {
	c := &svgCanvas{w: bufio.NewWriter(w), size: size}
	fmt.Fprintf(c.w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", size, size, size, size)
	fmt.Fprintf(c.w, `<rect width="%g" height="%g" fill="white" stroke="black"/>`+"\n", size, size)
	tree.Draw(c)
	fmt.Fprintln(c.w, "</svg>")
	return c.w.Flush()
}

// svgCanvasは、単位正方形をsize四方のSVGに写す。y軸は上向き。
type svgCanvas struct {
	w    *bufio.Writer
	size float64
}

func (c *svgCanvas) px(p kdtree.Point) (float64, float64) {
	return p.X * c.size, (1 - p.Y) * c.size
}

func (c *svgCanvas) Split(a, b kdtree.Point, axis kdtree.Axis) {
	color := "red"
	if axis == kdtree.AxisY {
		color = "blue"
	}
	x1, y1 := c.px(a)
	x2, y2 := c.px(b)
	fmt.Fprintf(c.w, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s"/>`+"\n", x1, y1, x2, y2, color)
}

func (c *svgCanvas) Dot(p kdtree.Point) {
	x, y := c.px(p)
	fmt.Fprintf(c.w, `<circle cx="%g" cy="%g" r="%g" fill="black"/>`+"\n", x, y, c.size*0.005)
}

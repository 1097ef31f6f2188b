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

	"github.com/spf13/cobra"
)

func newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the points inside a rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pointSourceFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			s, err := cmd.Flags().GetString("rect")
			if err != nil {
				return err
			}
			rect, err := parseRect(s)
			if err != nil {
				return err
			}
			tree, err := buildTree(src)
			if err != nil {
				return err
			}

			pts, err := tree.Range(&rect)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range pts {
				fmt.Fprintln(w, p)
			}
			return nil
		},
	}
	cmd.Flags().String("rect", "0,0,1,1", "query rectangle as xmin,ymin,xmax,ymax")
	return cmd
}

func newNearestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Print the point closest to a query point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pointSourceFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			s, err := cmd.Flags().GetString("point")
			if err != nil {
				return err
			}
			query, err := parsePoint(s)
			if err != nil {
				return err
			}
			tree, err := buildTree(src)
			if err != nil {
				return err
			}

			p, ok, err := tree.Nearest(&query)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "tree is empty")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v distance %g\n", p, query.DistanceTo(p))
			return nil
		},
	}
	cmd.Flags().String("point", "0.5,0.5", "query point as x,y")
	return cmd
}

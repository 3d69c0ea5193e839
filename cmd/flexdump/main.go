// Command flexdump reads a recursive JSON tree of styled nodes, runs it
// through flexcore, and writes each node's computed layout as JSON. It
// exists to exercise the forest and algorithm from outside the module's
// own test suite, not as a production layout service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	flexcore "github.com/phoenix-tui/flexcore"
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:   "flexdump",
	Short: "Compute flexbox layout for a JSON node tree and print the result",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", "path to the input JSON tree (default: stdin)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var doc treeNode
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decode input tree: %w", err)
	}

	forest := flexcore.NewForest()
	root, err := doc.build(forest)
	if err != nil {
		return fmt.Errorf("build forest: %w", err)
	}

	avail := geometry.Size[number.Number]{Width: number.Undefined(), Height: number.Undefined()}
	if doc.AvailWidth != nil {
		avail.Width = number.Of(*doc.AvailWidth)
	}
	if doc.AvailHeight != nil {
		avail.Height = number.Of(*doc.AvailHeight)
	}

	if err := forest.ComputeLayout(root, avail); err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	out, err := dumpLayout(forest, root)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type layoutDump struct {
	Order    uint32       `json:"order"`
	Width    float32      `json:"width"`
	Height   float32      `json:"height"`
	X        float32      `json:"x"`
	Y        float32      `json:"y"`
	Children []layoutDump `json:"children,omitempty"`
}

func dumpLayout(f *flexcore.Forest, id flexcore.NodeId) (layoutDump, error) {
	l, err := f.Layout(id)
	if err != nil {
		return layoutDump{}, err
	}
	kids, err := f.Children(id)
	if err != nil {
		return layoutDump{}, err
	}
	d := layoutDump{Order: l.Order, Width: l.Size.Width, Height: l.Size.Height, X: l.Location.X, Y: l.Location.Y}
	for _, k := range kids {
		cd, err := dumpLayout(f, k)
		if err != nil {
			return layoutDump{}, err
		}
		d.Children = append(d.Children, cd)
	}
	return d, nil
}

// Package measuretext adapts a plain string into a flexcore.MeasureFunc,
// the way a terminal UI built on flexcore would size a text leaf: split
// the string into grapheme clusters with uniseg (so combining marks and
// emoji ZWJ sequences count as one unit, not one per rune) and size each
// cluster with uniwidth (East-Asian-aware display width), wrapping onto a
// new line once a Defined width constraint is exceeded.
package measuretext

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"

	flexcore "github.com/phoenix-tui/flexcore"
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
)

// Func returns a flexcore.MeasureFunc that reports s's size in terminal
// cells: width is the widest wrapped line, height is the number of lines
// produced. When the constraint's width is Undefined, s is measured on a
// single line.
func Func(s string) flexcore.MeasureFunc {
	return func(constraint geometry.Size[number.Number]) (geometry.Size[float32], error) {
		maxWidth, wrap := constraint.Width.Value()
		lines := wrapClusters(s, maxWidth, wrap)

		var widest float32
		for _, l := range lines {
			if w := lineWidth(l); w > widest {
				widest = w
			}
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		return geometry.Size[float32]{Width: widest, Height: float32(len(lines))}, nil
	}
}

func lineWidth(line string) float32 {
	return float32(uniwidth.StringWidth(line))
}

// wrapClusters splits s into grapheme clusters and greedily packs them
// into lines no wider than maxWidth when wrap is true. Existing newlines
// in s always start a new line.
func wrapClusters(s string, maxWidth float32, wrap bool) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if !wrap {
			lines = append(lines, para)
			continue
		}
		var b strings.Builder
		var width float32
		state := -1
		remaining := para
		for len(remaining) > 0 {
			var cluster string
			cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
			cw := float32(uniwidth.StringWidth(cluster))
			if width+cw > maxWidth && b.Len() > 0 {
				lines = append(lines, b.String())
				b.Reset()
				width = 0
			}
			b.WriteString(cluster)
			width += cw
		}
		lines = append(lines, b.String())
	}
	return lines
}

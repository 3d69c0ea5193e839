package flexcore

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

// computeCrossAxis measures every item's hypothetical cross size, derives
// each line's cross size, and resolves each item's final cross-axis
// target size (stretching it to fill the line when align-self calls for
// it and the item didn't specify its own cross size).
func (f *Forest) computeCrossAxis(
	node NodeId,
	nodeStyle style.Style,
	lines []*flexLine,
	isRow bool,
	isWrapReverse bool,
	nodeSize geometry.Size[number.Number],
	nodeInnerSize geometry.Size[number.Number],
) {
	needsBaseline := false
	for _, line := range lines {
		for _, it := range line.items {
			if it.style.EffectiveAlignSelf(nodeStyle) == style.AlignSelfBaseline {
				needsBaseline = true
			}
		}
	}

	for _, line := range lines {
		for _, it := range line.items {
			crossMin := it.minSize.Cross(isRow)
			crossMax := it.maxSize.Cross(isRow)
			crossVal := number.MaybeMinOnF(number.MaybeMaxOnF(it.size.Cross(isRow).OrElse(0), crossMin), crossMax)
			it.hypotheticalInnerSize.SetCross(isRow, crossVal)
			it.hypotheticalOuterSize.SetCross(isRow, crossVal+geometry.Cross(it.margin, isRow))

			if needsBaseline {
				constraint := geometry.Size[number.Number]{}
				constraint.SetMain(isRow, number.Of(it.targetSize.Main(isRow)))
				constraint.SetCross(isRow, number.Of(crossVal))
				result, err := f.computeInternal(it.node, constraint, nodeInnerSize, false)
				if err == nil {
					kids, _ := f.Children(it.node)
					if len(kids) == 0 {
						it.baseline = result.Size.Height
					} else if childLayout, err2 := f.Layout(kids[0]); err2 == nil {
						it.baseline = childLayout.Location.Y + childLayout.Size.Height
					} else {
						it.baseline = result.Size.Height
					}
				}
			}
		}
	}

	singleLineDefiniteCross, hasDefiniteCross := nodeSize.Cross(isRow).Value()

	for _, line := range lines {
		if len(lines) == 1 && hasDefiniteCross {
			line.crossSize = nodeInnerSize.Cross(isRow).OrElse(singleLineDefiniteCross)
			continue
		}
		var lineMaxBaseline float32
		for _, it := range line.items {
			if it.baseline > lineMaxBaseline {
				lineMaxBaseline = it.baseline
			}
		}
		var maxCross float32
		for _, it := range line.items {
			v := it.hypotheticalOuterSize.Cross(isRow)
			if it.style.EffectiveAlignSelf(nodeStyle) == style.AlignSelfBaseline &&
				!it.marginIsAuto.CrossStart(isRow) && !it.marginIsAuto.CrossEnd(isRow) &&
				it.style.Size.Cross(isRow).IsAuto() {
				v = lineMaxBaseline - it.baseline + it.hypotheticalOuterSize.Cross(isRow)
			}
			if v > maxCross {
				maxCross = v
			}
		}
		if maxCross < 0 {
			maxCross = 0
		}
		line.crossSize = maxCross
	}

	for _, line := range lines {
		for _, it := range line.items {
			alignSelf := it.style.EffectiveAlignSelf(nodeStyle)
			stretches := alignSelf == style.AlignSelfStretch &&
				!it.marginIsAuto.CrossStart(isRow) && !it.marginIsAuto.CrossEnd(isRow) &&
				it.style.Size.Cross(isRow).IsAuto()
			if stretches {
				target := line.crossSize - geometry.Cross(it.margin, isRow)
				target = number.MaybeMinOnF(number.MaybeMaxOnF(target, it.minSize.Cross(isRow)), it.maxSize.Cross(isRow))
				it.targetSize.SetCross(isRow, target)
			} else {
				it.targetSize.SetCross(isRow, it.hypotheticalInnerSize.Cross(isRow))
			}
			it.outerTargetSize.SetCross(isRow, it.targetSize.Cross(isRow)+geometry.Cross(it.margin, isRow))
		}
	}
}

// alignContent distributes extra cross-axis space across lines
// (align-content: stretch) and assigns each line's cross-axis offset.
func (f *Forest) alignContent(nodeStyle style.Style, lines []*flexLine, innerCross float32, crossPaddingBorder float32, isWrapReverse bool) {
	total := sumLineCross(lines)
	if nodeStyle.AlignContent == style.AlignContentStretch && innerCross > total && len(lines) > 0 {
		extra := (innerCross - total) / float32(len(lines))
		for _, l := range lines {
			l.crossSize += extra
		}
		total = innerCross
	}

	free := innerCross - total
	n := len(lines)
	if n == 0 {
		return
	}
	offsets := make([]float32, n)
	switch nodeStyle.AlignContent {
	case style.AlignContentFlexStart:
		if isWrapReverse {
			offsets[0] = free
		}
	case style.AlignContentFlexEnd:
		if !isWrapReverse {
			offsets[0] = free
		}
	case style.AlignContentCenter:
		offsets[0] = free / 2
	case style.AlignContentSpaceBetween:
		if n > 1 {
			for i := 1; i < n; i++ {
				offsets[i] = free / float32(n-1)
			}
		}
	case style.AlignContentSpaceAround:
		offsets[0] = free / float32(2*n)
		for i := 1; i < n; i++ {
			offsets[i] = free / float32(n)
		}
	default: // Stretch
		offsets[0] = 0
	}

	order := make([]int, n)
	for i := range order {
		if isWrapReverse {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	running := crossPaddingBorder
	for i, idx := range order {
		running += offsets[i]
		lines[idx].offsetCross = running
		running += lines[idx].crossSize
	}
}

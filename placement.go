package flexcore

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

// justifyOffsets computes the per-item extra main-axis offset a
// justify-content mode injects before each item in iteration order.
func justifyOffsets(n int, free float32, justify style.JustifyContent, reverse bool) []float32 {
	offsets := make([]float32, n)
	if n == 0 {
		return offsets
	}
	switch justify {
	case style.JustifyContentFlexStart:
		if reverse {
			offsets[0] = free
		}
	case style.JustifyContentFlexEnd:
		if !reverse {
			offsets[0] = free
		}
	case style.JustifyContentCenter:
		offsets[0] = free / 2
	case style.JustifyContentSpaceBetween:
		if n > 1 {
			for i := 1; i < n; i++ {
				offsets[i] = free / float32(n-1)
			}
		}
	case style.JustifyContentSpaceAround:
		offsets[0] = free / float32(2*n)
		for i := 1; i < n; i++ {
			offsets[i] = free / float32(n)
		}
	case style.JustifyContentSpaceEvenly:
		for i := 0; i < n; i++ {
			offsets[i] = free / float32(n+1)
		}
	}
	return offsets
}

// justifyAndAlignLines resolves, for every item, its main-axis offset
// (auto-margin distribution or justify-content) and its cross-axis offset
// within its line (auto-margin distribution or align-self).
func (f *Forest) justifyAndAlignLines(lines []*flexLine, nodeStyle style.Style, isRow bool, reverse bool, isWrapReverse bool, containerMain float32, paddingBorder geometry.Rect[float32]) {
	innerMain := containerMain - geometry.Main(paddingBorder, isRow)

	for _, line := range lines {
		n := len(line.items)
		if n == 0 {
			continue
		}

		order := make([]int, n)
		for i := range order {
			if reverse {
				order[i] = n - 1 - i
			} else {
				order[i] = i
			}
		}

		var usedMain float32
		autoMarginCount := 0
		for _, it := range line.items {
			usedMain += it.outerTargetSize.Main(isRow)
			if it.marginIsAuto.MainStart(isRow) {
				autoMarginCount++
			}
			if it.marginIsAuto.MainEnd(isRow) {
				autoMarginCount++
			}
		}
		free := innerMain - usedMain

		if free > 0 && autoMarginCount > 0 {
			share := free / float32(autoMarginCount)
			for _, it := range line.items {
				if it.marginIsAuto.MainStart(isRow) {
					setMainMargin(it, isRow, true, share)
				}
				if it.marginIsAuto.MainEnd(isRow) {
					setMainMargin(it, isRow, false, share)
				}
				it.offsetMain = 0
			}
		} else {
			offsets := justifyOffsets(n, free, nodeStyle.JustifyContent, reverse)
			for i, idx := range order {
				line.items[idx].offsetMain = offsets[i]
			}
		}

		for _, it := range line.items {
			alignSelf := it.style.EffectiveAlignSelf(nodeStyle)
			free := line.crossSize - it.outerTargetSize.Cross(isRow)
			startAuto := it.marginIsAuto.CrossStart(isRow)
			endAuto := it.marginIsAuto.CrossEnd(isRow)
			switch {
			case startAuto && endAuto:
				setCrossMargin(it, isRow, true, free/2)
				setCrossMargin(it, isRow, false, free/2)
				it.offsetCross = 0
			case startAuto:
				setCrossMargin(it, isRow, true, free)
				it.offsetCross = 0
			case endAuto:
				setCrossMargin(it, isRow, false, free)
				it.offsetCross = 0
			default:
				it.offsetCross = crossAlignOffset(alignSelf, free, isRow, it.baseline, maxBaselineOf(line), isWrapReverse)
			}
		}
	}
}

func maxBaselineOf(line *flexLine) float32 {
	var max float32
	for _, it := range line.items {
		if it.baseline > max {
			max = it.baseline
		}
	}
	return max
}

func crossAlignOffset(alignSelf style.AlignSelf, free float32, isRow bool, baseline, maxBaseline float32, wrapReverse bool) float32 {
	switch alignSelf {
	case style.AlignSelfFlexEnd:
		if wrapReverse {
			return 0
		}
		return free
	case style.AlignSelfCenter:
		return free / 2
	case style.AlignSelfBaseline:
		if isRow {
			return maxBaseline - baseline
		}
		if wrapReverse {
			return free
		}
		return 0
	case style.AlignSelfStretch:
		if wrapReverse {
			return free
		}
		return 0
	default: // FlexStart
		if wrapReverse {
			return free
		}
		return 0
	}
}

func setMainMargin(it *flexItem, isRow, start bool, v float32) {
	if start {
		if isRow {
			it.margin.Start = v
		} else {
			it.margin.Top = v
		}
	} else {
		if isRow {
			it.margin.End = v
		} else {
			it.margin.Bottom = v
		}
	}
}

func setCrossMargin(it *flexItem, isRow, start bool, v float32) {
	if start {
		if isRow {
			it.margin.Top = v
		} else {
			it.margin.Start = v
		}
	} else {
		if isRow {
			it.margin.Bottom = v
		} else {
			it.margin.End = v
		}
	}
}

// placeItems walks lines and items in flow order, recursing into each
// item's subtree and writing its Layout relative to this node's content
// box origin.
func (f *Forest) placeItems(lines []*flexLine, isRow bool, reverse bool, wrapReverse bool, paddingBorder geometry.Rect[float32], containerSize geometry.Size[float32]) {
	lineOrder := make([]int, len(lines))
	for i := range lineOrder {
		if wrapReverse {
			lineOrder[i] = len(lines) - 1 - i
		} else {
			lineOrder[i] = i
		}
	}

	for _, li := range lineOrder {
		line := lines[li]
		n := len(line.items)
		itemOrder := make([]int, n)
		for i := range itemOrder {
			if reverse {
				itemOrder[i] = n - 1 - i
			} else {
				itemOrder[i] = i
			}
		}

		runningMain := paddingBorder.MainStart(isRow)

		for _, idx := range itemOrder {
			it := line.items[idx]

			childSize := geometry.Size[number.Number]{}
			childSize.SetMain(isRow, number.Of(it.targetSize.Main(isRow)))
			childSize.SetCross(isRow, number.Of(it.targetSize.Cross(isRow)))

			parentSize := geometry.Size[number.Number]{}
			parentSize.SetMain(isRow, number.Of(containerSize.Main(isRow)))
			parentSize.SetCross(isRow, number.Of(containerSize.Cross(isRow)))

			result, err := f.computeInternal(it.node, childSize, parentSize, true)
			if err != nil {
				continue
			}

			posMainStart, hasMainStart := it.position.MainStart(isRow).Value()
			posMainEnd, hasMainEnd := it.position.MainEnd(isRow).Value()
			mainInsetAdjust := float32(0)
			if hasMainStart {
				mainInsetAdjust += posMainStart
			}
			if hasMainEnd {
				mainInsetAdjust -= posMainEnd
			}

			posCrossStart, hasCrossStart := it.position.CrossStart(isRow).Value()
			posCrossEnd, hasCrossEnd := it.position.CrossEnd(isRow).Value()
			crossInsetAdjust := float32(0)
			if hasCrossStart {
				crossInsetAdjust += posCrossStart
			}
			if hasCrossEnd {
				crossInsetAdjust -= posCrossEnd
			}

			offsetMainAbs := runningMain + it.offsetMain + it.margin.MainStart(isRow) + mainInsetAdjust
			offsetCrossAbs := line.offsetCross + it.offsetCross + it.margin.CrossStart(isRow) + crossInsetAdjust

			var loc geometry.Point[float32]
			if isRow {
				loc = geometry.Point[float32]{X: offsetMainAbs, Y: offsetCrossAbs}
			} else {
				loc = geometry.Point[float32]{X: offsetCrossAbs, Y: offsetMainAbs}
			}

			f.setLayout(it.node, Layout{Order: uint32(it.order), Size: result.Size, Location: loc})

			runningMain += it.offsetMain + geometry.Main(it.margin, isRow) + result.Size.Main(isRow)
		}
	}
}

// layoutAbsoluteChildren positions every original child with
// position:absolute relative to this node's border box, then recurses to
// lay out its subtree.
func (f *Forest) layoutAbsoluteChildren(nodeStyle style.Style, rawChildren []NodeId, containerSize geometry.Size[float32], paddingBorder, border geometry.Rect[float32]) {
	containerWidth := number.Of(containerSize.Width)
	containerHeight := number.Of(containerSize.Height)

	for idx, child := range rawChildren {
		cs, err := f.Style(child)
		if err != nil || cs.PositionType != style.PositionAbsolute || cs.Display == style.DisplayNone {
			continue
		}

		pos := resolveEdgesAsNumberFull(cs.Position, containerWidth, containerHeight)
		margin := resolveEdgesFull(cs.Margin, containerWidth, containerHeight)

		startW, hasStart := pos.Start.Value()
		endW, hasEnd := pos.End.Value()
		topH, hasTop := pos.Top.Value()
		bottomH, hasBottom := pos.Bottom.Value()

		width, widthDefined := cs.Size.Width.Resolve(containerWidth).Value()
		if !widthDefined && hasStart && hasEnd {
			width = containerSize.Width - startW - endW
			widthDefined = true
		}
		height, heightDefined := cs.Size.Height.Resolve(containerHeight).Value()
		if !heightDefined && hasTop && hasBottom {
			height = containerSize.Height - topH - bottomH
			heightDefined = true
		}

		childSize := geometry.Size[number.Number]{Width: number.Undefined(), Height: number.Undefined()}
		if widthDefined {
			childSize.Width = number.Of(width)
		}
		if heightDefined {
			childSize.Height = number.Of(height)
		}

		result, err := f.computeInternal(child, childSize, containerSize2Number(containerSize), true)
		if err != nil {
			continue
		}

		var x, y float32
		if hasStart {
			x = startW + border.Start
		} else if hasEnd {
			x = containerSize.Width - endW - border.End - result.Size.Width
		} else {
			x = justifyFallback(nodeStyle.JustifyContent, containerSize.Width, result.Size.Width, paddingBorder.Start, paddingBorder.End)
		}
		if hasTop {
			y = topH + border.Top
		} else if hasBottom {
			y = containerSize.Height - bottomH - border.Bottom - result.Size.Height
		} else {
			y = alignFallback(cs.EffectiveAlignSelf(nodeStyle), containerSize.Height, result.Size.Height, paddingBorder.Top, paddingBorder.Bottom)
		}
		x += margin.Start
		y += margin.Top

		f.setLayout(child, Layout{
			Order:    uint32(idx),
			Size:     result.Size,
			Location: geometry.Point[float32]{X: x, Y: y},
		})
	}
}

func justifyFallback(j style.JustifyContent, container, size, padStart, padEnd float32) float32 {
	free := container - size - padStart - padEnd
	switch j {
	case style.JustifyContentFlexEnd:
		return padStart + free
	case style.JustifyContentCenter:
		return padStart + free/2
	default:
		return padStart
	}
}

func alignFallback(a style.AlignSelf, container, size, padStart, padEnd float32) float32 {
	free := container - size - padStart - padEnd
	switch a {
	case style.AlignSelfFlexEnd:
		return padStart + free
	case style.AlignSelfCenter:
		return padStart + free/2
	default:
		return padStart
	}
}

func resolveEdgesAsNumberFull(r geometry.Rect[style.Dimension], width, height number.Number) geometry.Rect[number.Number] {
	return geometry.Rect[number.Number]{
		Start:  r.Start.Resolve(width),
		End:    r.End.Resolve(width),
		Top:    r.Top.Resolve(height),
		Bottom: r.Bottom.Resolve(height),
	}
}

func resolveEdgesFull(r geometry.Rect[style.Dimension], width, height number.Number) geometry.Rect[float32] {
	return geometry.Rect[float32]{
		Start:  r.Start.Resolve(width).OrElse(0),
		End:    r.End.Resolve(width).OrElse(0),
		Top:    r.Top.Resolve(height).OrElse(0),
		Bottom: r.Bottom.Resolve(height).OrElse(0),
	}
}

func containerSize2Number(s geometry.Size[float32]) geometry.Size[number.Number] {
	return geometry.Size[number.Number]{Width: number.Of(s.Width), Height: number.Of(s.Height)}
}

// hideDisplayNoneChildren zeroes out the subtree size/location of every
// original child whose display is None, assigning each a sequential
// order so downstream consumers see a stable (if meaningless) index.
func (f *Forest) hideDisplayNoneChildren(rawChildren []NodeId) {
	order := uint32(0)
	for _, child := range rawChildren {
		cs, err := f.Style(child)
		if err != nil {
			continue
		}
		if cs.Display != style.DisplayNone {
			continue
		}
		f.zeroSubtree(child, order)
		order++
	}
}

func (f *Forest) zeroSubtree(id NodeId, order uint32) {
	if !f.valid(id) {
		return
	}
	f.setLayout(id, Layout{Order: order, Size: geometry.Size[float32]{}, Location: geometry.Point[float32]{}})
	kids, _ := f.Children(id)
	for i, c := range kids {
		f.zeroSubtree(c, uint32(i))
	}
}

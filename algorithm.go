package flexcore

import (
	"math"

	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

// cacheEpsilon bounds how close a requested node size must be to a cached
// result's size for the cache entry to be considered compatible. Matches
// f32::EPSILON, the tolerance the reference engine's cache check uses.
const cacheEpsilon = float32(1.1920929e-7)

func widthCompatible(requested, cachedResult, cachedRequest number.Number) bool {
	if v, ok := requested.Value(); ok {
		if cv, ok2 := cachedResult.Value(); ok2 {
			return float32(math.Abs(float64(v-cv))) < cacheEpsilon
		}
		return false
	}
	return requested.IsUndefined() && cachedRequest.IsUndefined()
}

func (f *Forest) cacheLookup(id NodeId, nodeSize, parentSize geometry.Size[number.Number], performLayout bool) (ComputeResult, bool) {
	entry := f.nodes[id].cache
	if entry == nil {
		return ComputeResult{}, false
	}
	if !(entry.performLayout || !performLayout) {
		return ComputeResult{}, false
	}
	sameInputs := entry.nodeSize.Width.Equal(nodeSize.Width) &&
		entry.nodeSize.Height.Equal(nodeSize.Height) &&
		entry.parentSize.Width.Equal(parentSize.Width) &&
		entry.parentSize.Height.Equal(parentSize.Height)
	if sameInputs {
		return entry.result, true
	}
	widthOK := widthCompatible(nodeSize.Width, number.Of(entry.result.Size.Width), entry.nodeSize.Width)
	heightOK := widthCompatible(nodeSize.Height, number.Of(entry.result.Size.Height), entry.nodeSize.Height)
	if widthOK && heightOK {
		return entry.result, true
	}
	return ComputeResult{}, false
}

func (f *Forest) storeCache(id NodeId, nodeSize, parentSize geometry.Size[number.Number], performLayout bool, result ComputeResult) {
	f.nodes[id].cache = &cacheEntry{
		nodeSize:      nodeSize,
		parentSize:    parentSize,
		performLayout: performLayout,
		result:        result,
	}
}

// computeInternal is the recursive core of the layout algorithm: given a
// node, the caller's proposed size for it, the parent's size (for
// percentage resolution), and whether descendants' Layout should actually
// be written, it returns the node's resolved size, padding and border
// included. It wraps
// computeInternalUncached with diagnostics recording (see diagnostics.go).
func (f *Forest) computeInternal(node NodeId, nodeSize, parentSize geometry.Size[number.Number], performLayout bool) (ComputeResult, error) {
	if f.diag == nil {
		return f.computeInternalUncached(node, nodeSize, parentSize, performLayout)
	}
	_, cacheHit := f.cacheLookup(node, nodeSize, parentSize, performLayout)
	result, err := f.computeInternalUncached(node, nodeSize, parentSize, performLayout)
	f.diag.Record(DiagEvent{
		Node:          node,
		NodeSize:      nodeSize,
		ParentSize:    parentSize,
		PerformLayout: performLayout,
		CacheHit:      cacheHit,
		ResultSize:    result.Size,
		Err:           err,
	})
	return result, err
}

func (f *Forest) computeInternalUncached(node NodeId, nodeSize, parentSize geometry.Size[number.Number], performLayout bool) (ComputeResult, error) {
	if cached, ok := f.cacheLookup(node, nodeSize, parentSize, performLayout); ok {
		return cached, nil
	}

	nodeStyle := f.nodes[node].style
	rawChildren := f.nodes[node].children

	dir := nodeStyle.FlexDirection
	isRow := dir.IsRow()
	isWrapReverse := nodeStyle.FlexWrap == style.FlexWrapWrapReverse

	padding := resolveEdges(nodeStyle.Padding, parentSize.Width)
	border := resolveEdges(nodeStyle.Border, parentSize.Width)
	paddingBorder := paddingBorderRect(padding, border)

	nodeInnerSize := geometry.Size[number.Number]{
		Width:  nodeSize.Width.SubF(paddingBorder.Start + paddingBorder.End),
		Height: nodeSize.Height.SubF(paddingBorder.Top + paddingBorder.Bottom),
	}

	// Leaf fast paths.
	if len(rawChildren) == 0 {
		if w, ok := nodeSize.Width.Value(); ok {
			if h, ok2 := nodeSize.Height.Value(); ok2 {
				result := ComputeResult{Size: geometry.Size[float32]{Width: w, Height: h}}
				f.storeCache(node, nodeSize, parentSize, performLayout, result)
				return result, nil
			}
		}
		if measure := f.nodes[node].measure; measure != nil {
			available := nodeSize
			measured, err := measure(available)
			if err != nil {
				return ComputeResult{}, &MeasureError{Node: node, Err: err}
			}
			result := ComputeResult{Size: measured}
			f.storeCache(node, nodeSize, parentSize, performLayout, result)
			return result, nil
		}
		result := ComputeResult{Size: geometry.Size[float32]{
			Width:  nodeSize.Width.OrElse(0) + geometry.Horizontal(paddingBorder),
			Height: nodeSize.Height.OrElse(0) + geometry.Vertical(paddingBorder),
		}}
		f.storeCache(node, nodeSize, parentSize, performLayout, result)
		return result, nil
	}

	items := f.buildFlexItems(rawChildren, nodeStyle, nodeInnerSize)

	for _, item := range items {
		if err := f.determineFlexBasis(item, nodeStyle, isRow, nodeInnerSize); err != nil {
			return ComputeResult{}, err
		}
		item.innerFlexBasis = item.flexBasis - geometry.Main(padding, isRow) - geometry.Main(border, isRow)
		minMain := item.minSize.Main(isRow)
		maxMain := item.maxSize.Main(isRow)
		clamped := number.MaybeMinOnF(number.MaybeMaxOnF(item.flexBasis, minMain), maxMain)
		item.hypotheticalInnerSize.SetMain(isRow, clamped)
		item.hypotheticalOuterSize.SetMain(isRow, clamped+geometry.Main(item.margin, isRow))
	}

	lines := collectLines(items, isRow, nodeInnerSize.Main(isRow), nodeStyle.FlexWrap != style.FlexWrapNoWrap)

	for i := range lines {
		resolveFlexibleLengths(lines[i], isRow, nodeInnerSize.Main(isRow))
	}

	containerMain := containerMainSize(nodeSize, nodeInnerSize, lines, paddingBorder, isRow)

	f.computeCrossAxis(node, nodeStyle, lines, isRow, isWrapReverse, nodeSize, nodeInnerSize)

	containerCross := nodeSize.Cross(isRow).OrElseNumber(
		number.Of(sumLineCross(lines) + geometry.Cross(paddingBorder, isRow)),
	)
	crossVal, _ := containerCross.Value()

	f.alignContent(nodeStyle, lines, crossVal-geometry.Cross(paddingBorder, isRow), paddingBorder.CrossStart(isRow), isWrapReverse)

	containerSize := geometry.Size[float32]{}
	containerSize.SetMain(isRow, containerMain)
	containerSize.SetCross(isRow, crossVal)

	f.justifyAndAlignLines(lines, nodeStyle, isRow, dir.IsReverse(), isWrapReverse, containerMain, paddingBorder)

	if performLayout {
		f.placeItems(lines, isRow, dir.IsReverse(), isWrapReverse, paddingBorder, containerSize)
		f.layoutAbsoluteChildren(nodeStyle, rawChildren, containerSize, paddingBorder, border)
		f.hideDisplayNoneChildren(rawChildren)
	}

	result := ComputeResult{Size: containerSize}
	f.storeCache(node, nodeSize, parentSize, performLayout, result)
	return result, nil
}

// resolveFlexibleLengths implements CSS Flexbox §9.7: it distributes a
// line's remaining free space across items by flex-grow or flex-shrink,
// freezing items that cannot move further, until every item is frozen.
func resolveFlexibleLengths(line *flexLine, isRow bool, nodeInnerMain number.Number) {
	items := line.items
	if len(items) == 0 {
		return
	}

	var usedFlexFactor float32
	for _, it := range items {
		usedFlexFactor += it.hypotheticalOuterSize.Main(isRow)
	}
	innerMain := nodeInnerMain.OrElse(0)
	growing := usedFlexFactor < innerMain
	shrinking := !growing

	target := make([]float32, len(items))
	frozen := make([]bool, len(items))
	for i, it := range items {
		target[i] = it.hypotheticalInnerSize.Main(isRow)
		switch {
		case it.style.FlexGrow == 0 && it.style.FlexShrink == 0:
			frozen[i] = true
		case growing && it.flexBasis > it.hypotheticalInnerSize.Main(isRow):
			frozen[i] = true
		case shrinking && it.flexBasis < it.hypotheticalInnerSize.Main(isRow):
			frozen[i] = true
		}
	}

	sumUsed := func() float32 {
		var used float32
		for i, it := range items {
			v := it.flexBasis
			if frozen[i] {
				v = target[i]
			}
			used += geometry.Main(it.margin, isRow) + v
		}
		return used
	}

	initialFreeSpace := innerMain - sumUsed()

	allFrozen := func() bool {
		for _, fr := range frozen {
			if !fr {
				return false
			}
		}
		return true
	}

	for !allFrozen() {
		used := sumUsed()

		var sumGrow, sumShrink float32
		for i, it := range items {
			if frozen[i] {
				continue
			}
			sumGrow += it.style.FlexGrow
			sumShrink += it.style.FlexShrink
		}

		var freeSpace float32
		switch {
		case growing && sumGrow < 1:
			a := initialFreeSpace * sumGrow
			b := innerMain - used
			if a < b {
				freeSpace = a
			} else {
				freeSpace = b
			}
		case shrinking && sumShrink < 1:
			a := initialFreeSpace * sumShrink
			b := innerMain - used
			if a > b {
				freeSpace = a
			} else {
				freeSpace = b
			}
		default:
			if nodeInnerMain.IsDefined() {
				freeSpace = innerMain - used
			} else {
				freeSpace = 0
			}
		}

		for i, it := range items {
			if frozen[i] {
				continue
			}
			target[i] = it.flexBasis
		}

		if isNormalFloat32(freeSpace) {
			switch {
			case growing && sumGrow > 0:
				for i, it := range items {
					if frozen[i] {
						continue
					}
					target[i] = it.flexBasis + freeSpace*(it.style.FlexGrow/sumGrow)
				}
			case shrinking && sumShrink > 0:
				var sumScaled float32
				scaled := make([]float32, len(items))
				for i, it := range items {
					if frozen[i] {
						continue
					}
					scaled[i] = it.innerFlexBasis * it.style.FlexShrink
					sumScaled += scaled[i]
				}
				if sumScaled > 0 {
					for i, it := range items {
						if frozen[i] {
							continue
						}
						target[i] = it.flexBasis + freeSpace*(scaled[i]/sumScaled)
					}
				}
			}
		}

		var totalViolation float32
		violation := make([]float32, len(items))
		for i, it := range items {
			if frozen[i] {
				continue
			}
			minMain := it.minSize.Main(isRow)
			maxMain := it.maxSize.Main(isRow)
			clamped := number.MaybeMinOnF(number.MaybeMaxOnF(target[i], minMain), maxMain)
			if clamped < 0 {
				clamped = 0
			}
			violation[i] = clamped - target[i]
			target[i] = clamped
			totalViolation += violation[i]
		}

		switch {
		case totalViolation == 0:
			for i := range items {
				frozen[i] = true
			}
		case totalViolation > 0:
			for i := range items {
				if !frozen[i] && violation[i] > 0 {
					frozen[i] = true
				}
			}
		default:
			for i := range items {
				if !frozen[i] && violation[i] < 0 {
					frozen[i] = true
				}
			}
		}
	}

	for i, it := range items {
		it.targetSize.SetMain(isRow, target[i])
		it.outerTargetSize.SetMain(isRow, target[i]+geometry.Main(it.margin, isRow))
		it.frozen = true
	}
}

// isNormalFloat32 mirrors Rust's f32::is_normal: true for finite, nonzero
// values that are not subnormal.
func isNormalFloat32(v float32) bool {
	if v == 0 || math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return false
	}
	const minNormal = 1.1754943508222875e-38
	av := v
	if av < 0 {
		av = -av
	}
	return av >= minNormal
}

// containerMainSize resolves the container's own main-axis size: the
// node's own definite size wins; otherwise it's the longest line plus
// padding/border, bumped up to the available space when there are
// multiple lines and available space is larger.
func containerMainSize(nodeSize, nodeInnerSize geometry.Size[number.Number], lines []*flexLine, paddingBorder geometry.Rect[float32], isRow bool) float32 {
	if v, ok := nodeSize.Main(isRow).Value(); ok {
		return v
	}
	var longest float32
	for _, line := range lines {
		var sum float32
		for _, it := range line.items {
			sum += it.outerTargetSize.Main(isRow)
		}
		if sum > longest {
			longest = sum
		}
	}
	total := longest + geometry.Main(paddingBorder, isRow)
	if len(lines) > 1 {
		if avail, ok := nodeInnerSize.Main(isRow).Value(); ok && total < avail+geometry.Main(paddingBorder, isRow) {
			total = avail + geometry.Main(paddingBorder, isRow)
		}
	}
	return total
}

func sumLineCross(lines []*flexLine) float32 {
	var total float32
	for _, l := range lines {
		total += l.crossSize
	}
	return total
}

// buildFlexItems filters out absolutely-positioned and display:none
// children and resolves each remaining child's style-level dimensions
// against the container's inner size (for size/min/max) or width (for
// position/margin/padding/border, per the containing-block convention
// this engine uses uniformly).
func (f *Forest) buildFlexItems(children []NodeId, parentStyle style.Style, nodeInnerSize geometry.Size[number.Number]) []*flexItem {
	items := make([]*flexItem, 0, len(children))
	for idx, child := range children {
		cs, err := f.Style(child)
		if err != nil {
			continue
		}
		if cs.Display == style.DisplayNone || cs.PositionType == style.PositionAbsolute {
			continue
		}
		item := &flexItem{
			node:         child,
			order:        idx,
			style:        cs,
			size:         resolveSize(cs.Size, nodeInnerSize),
			minSize:      resolveSize(cs.MinSize, nodeInnerSize),
			maxSize:      resolveSize(cs.MaxSize, nodeInnerSize),
			position:     resolveEdgesAsNumber(cs.Position, nodeInnerSize.Width),
			margin:       resolveEdges(cs.Margin, nodeInnerSize.Width),
			marginIsAuto: marginIsAutoEdges(cs.Margin),
			padding:      resolveEdges(cs.Padding, nodeInnerSize.Width),
			border:       resolveEdges(cs.Border, nodeInnerSize.Width),
		}
		items = append(items, item)
	}
	return items
}

// determineFlexBasis implements the three-branch flex-basis resolution:
// an explicit flex-basis, an aspect-ratio derived basis, or a measured
// basis clamped to the item's own min/max main size.
func (f *Forest) determineFlexBasis(item *flexItem, parentStyle style.Style, isRow bool, nodeInnerSize geometry.Size[number.Number]) error {
	if v, ok := item.style.FlexBasis.Resolve(nodeInnerSize.Main(isRow)).Value(); ok {
		item.flexBasis = v
		return nil
	}

	if ratio, ok := item.style.AspectRatio.Value(); ok && item.style.FlexBasis.IsAuto() {
		if crossVal, ok2 := item.size.Cross(isRow).Value(); ok2 {
			item.flexBasis = crossVal * ratio
			return nil
		}
	}

	childCross := item.size.Cross(isRow)
	if item.style.Size.Cross(isRow).IsAuto() && item.style.EffectiveAlignSelf(parentStyle) == style.AlignSelfStretch {
		childCross = nodeInnerSize.Cross(isRow)
	}

	constraint := geometry.Size[number.Number]{}
	constraint.SetMain(isRow, item.size.Main(isRow))
	constraint.SetCross(isRow, childCross)

	measured, err := f.computeInternal(item.node, constraint, nodeInnerSize, false)
	if err != nil {
		return err
	}
	mainVal := measured.Size.Main(isRow)
	clamped := number.MaybeMinOnF(number.MaybeMaxOnF(mainVal, item.minSize.Main(isRow)), item.maxSize.Main(isRow))
	item.flexBasis = clamped
	return nil
}

// collectLines groups items into flex lines, greedily accumulating items
// until the next item would overflow the available main space. The first
// item placed on a line is never rejected for overflowing alone.
func collectLines(items []*flexItem, isRow bool, availableMain number.Number, wrap bool) []*flexLine {
	if !wrap {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	var current []*flexItem
	var used float32
	limit, limited := availableMain.Value()
	for _, item := range items {
		itemMain := item.hypotheticalOuterSize.Main(isRow)
		if limited && len(current) > 0 && used+itemMain > limit {
			lines = append(lines, &flexLine{items: current})
			current = nil
			used = 0
		}
		current = append(current, item)
		used += itemMain
	}
	if len(current) > 0 || len(lines) == 0 {
		lines = append(lines, &flexLine{items: current})
	}
	return lines
}

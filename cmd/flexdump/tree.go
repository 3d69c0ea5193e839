package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	flexcore "github.com/phoenix-tui/flexcore"
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/style"
)

// dimension parses a JSON value into a style.Dimension: a bare number is
// Points, a string ending in "%" is Percent, the string "auto" is Auto,
// and a missing field keeps the default style.New gives that property
// (Auto for sizes and flex_basis, Undefined for edges).
type dimension struct {
	set bool
	d   style.Dimension
}

func (d *dimension) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.set = true
	switch v := raw.(type) {
	case float64:
		d.d = style.Points(float32(v))
	case string:
		if v == "auto" {
			d.d = style.Auto()
			return nil
		}
		if strings.HasSuffix(v, "%") {
			f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 32)
			if err != nil {
				return fmt.Errorf("invalid percent dimension %q: %w", v, err)
			}
			d.d = style.Percent(float32(f) / 100)
			return nil
		}
		return fmt.Errorf("invalid dimension string %q", v)
	default:
		return fmt.Errorf("invalid dimension value %v", raw)
	}
	return nil
}

func (d dimension) orDefault(def style.Dimension) style.Dimension {
	if !d.set {
		return def
	}
	return d.d
}

type edgesJSON struct {
	Start  dimension `json:"start"`
	End    dimension `json:"end"`
	Top    dimension `json:"top"`
	Bottom dimension `json:"bottom"`
}

type nodeStyleJSON struct {
	Display        string    `json:"display"`
	PositionType   string    `json:"position_type"`
	FlexDirection  string    `json:"flex_direction"`
	FlexWrap       string    `json:"flex_wrap"`
	AlignItems     string    `json:"align_items"`
	AlignSelf      string    `json:"align_self"`
	AlignContent   string    `json:"align_content"`
	JustifyContent string    `json:"justify_content"`
	Width          dimension `json:"width"`
	Height         dimension `json:"height"`
	MinWidth       dimension `json:"min_width"`
	MinHeight      dimension `json:"min_height"`
	MaxWidth       dimension `json:"max_width"`
	MaxHeight      dimension `json:"max_height"`
	FlexGrow       *float32  `json:"flex_grow"`
	FlexShrink     *float32  `json:"flex_shrink"`
	FlexBasis      dimension `json:"flex_basis"`
	Margin         edgesJSON `json:"margin"`
	Padding        edgesJSON `json:"padding"`
	Border         edgesJSON `json:"border"`
	Position       edgesJSON `json:"position"`
}

type treeNode struct {
	Style       nodeStyleJSON `json:"style"`
	Children    []treeNode    `json:"children"`
	AvailWidth  *float32      `json:"avail_width"`
	AvailHeight *float32      `json:"avail_height"`
}

func (n treeNode) toStyle() (style.Style, error) {
	s := style.New()

	switch n.Style.Display {
	case "", "flex":
		s.Display = style.DisplayFlex
	case "none":
		s.Display = style.DisplayNone
	default:
		return s, fmt.Errorf("unknown display %q", n.Style.Display)
	}

	switch n.Style.PositionType {
	case "", "relative":
		s.PositionType = style.PositionRelative
	case "absolute":
		s.PositionType = style.PositionAbsolute
	default:
		return s, fmt.Errorf("unknown position_type %q", n.Style.PositionType)
	}

	switch n.Style.FlexDirection {
	case "", "row":
		s.FlexDirection = style.FlexDirectionRow
	case "column":
		s.FlexDirection = style.FlexDirectionColumn
	case "row-reverse":
		s.FlexDirection = style.FlexDirectionRowReverse
	case "column-reverse":
		s.FlexDirection = style.FlexDirectionColumnReverse
	default:
		return s, fmt.Errorf("unknown flex_direction %q", n.Style.FlexDirection)
	}

	switch n.Style.FlexWrap {
	case "", "nowrap":
		s.FlexWrap = style.FlexWrapNoWrap
	case "wrap":
		s.FlexWrap = style.FlexWrapWrap
	case "wrap-reverse":
		s.FlexWrap = style.FlexWrapWrapReverse
	default:
		return s, fmt.Errorf("unknown flex_wrap %q", n.Style.FlexWrap)
	}

	var err error
	if s.AlignItems, err = parseAlignItems(n.Style.AlignItems); err != nil {
		return s, err
	}
	if s.AlignSelf, err = parseAlignSelf(n.Style.AlignSelf); err != nil {
		return s, err
	}
	if s.AlignContent, err = parseAlignContent(n.Style.AlignContent); err != nil {
		return s, err
	}
	if s.JustifyContent, err = parseJustifyContent(n.Style.JustifyContent); err != nil {
		return s, err
	}

	s.Size.Width = n.Style.Width.orDefault(s.Size.Width)
	s.Size.Height = n.Style.Height.orDefault(s.Size.Height)
	s.MinSize.Width = n.Style.MinWidth.orDefault(s.MinSize.Width)
	s.MinSize.Height = n.Style.MinHeight.orDefault(s.MinSize.Height)
	s.MaxSize.Width = n.Style.MaxWidth.orDefault(s.MaxSize.Width)
	s.MaxSize.Height = n.Style.MaxHeight.orDefault(s.MaxSize.Height)
	s.FlexBasis = n.Style.FlexBasis.orDefault(s.FlexBasis)

	if n.Style.FlexGrow != nil {
		s.FlexGrow = *n.Style.FlexGrow
	}
	if n.Style.FlexShrink != nil {
		s.FlexShrink = *n.Style.FlexShrink
	}

	s.Margin = applyEdges(n.Style.Margin, s.Margin)
	s.Padding = applyEdges(n.Style.Padding, s.Padding)
	s.Border = applyEdges(n.Style.Border, s.Border)
	s.Position = applyEdges(n.Style.Position, s.Position)

	return s, nil
}

func applyEdges(e edgesJSON, base geometry.Rect[style.Dimension]) geometry.Rect[style.Dimension] {
	return geometry.Rect[style.Dimension]{
		Start:  e.Start.orDefault(base.Start),
		End:    e.End.orDefault(base.End),
		Top:    e.Top.orDefault(base.Top),
		Bottom: e.Bottom.orDefault(base.Bottom),
	}
}

func (n treeNode) build(f *flexcore.Forest) (flexcore.NodeId, error) {
	var kids []flexcore.NodeId
	for _, c := range n.Children {
		id, err := c.build(f)
		if err != nil {
			return 0, err
		}
		kids = append(kids, id)
	}
	s, err := n.toStyle()
	if err != nil {
		return 0, err
	}
	return f.NewNode(s, kids)
}

func parseAlignItems(v string) (style.AlignItems, error) {
	switch v {
	case "", "stretch":
		return style.AlignItemsStretch, nil
	case "flex-start":
		return style.AlignItemsFlexStart, nil
	case "flex-end":
		return style.AlignItemsFlexEnd, nil
	case "center":
		return style.AlignItemsCenter, nil
	case "baseline":
		return style.AlignItemsBaseline, nil
	}
	return 0, fmt.Errorf("unknown align_items %q", v)
}

func parseAlignSelf(v string) (style.AlignSelf, error) {
	switch v {
	case "", "auto":
		return style.AlignSelfAuto, nil
	case "flex-start":
		return style.AlignSelfFlexStart, nil
	case "flex-end":
		return style.AlignSelfFlexEnd, nil
	case "center":
		return style.AlignSelfCenter, nil
	case "baseline":
		return style.AlignSelfBaseline, nil
	case "stretch":
		return style.AlignSelfStretch, nil
	}
	return 0, fmt.Errorf("unknown align_self %q", v)
}

func parseAlignContent(v string) (style.AlignContent, error) {
	switch v {
	case "", "stretch":
		return style.AlignContentStretch, nil
	case "flex-start":
		return style.AlignContentFlexStart, nil
	case "flex-end":
		return style.AlignContentFlexEnd, nil
	case "center":
		return style.AlignContentCenter, nil
	case "space-between":
		return style.AlignContentSpaceBetween, nil
	case "space-around":
		return style.AlignContentSpaceAround, nil
	}
	return 0, fmt.Errorf("unknown align_content %q", v)
}

func parseJustifyContent(v string) (style.JustifyContent, error) {
	switch v {
	case "", "flex-start":
		return style.JustifyContentFlexStart, nil
	case "flex-end":
		return style.JustifyContentFlexEnd, nil
	case "center":
		return style.JustifyContentCenter, nil
	case "space-between":
		return style.JustifyContentSpaceBetween, nil
	case "space-around":
		return style.JustifyContentSpaceAround, nil
	case "space-evenly":
		return style.JustifyContentSpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown justify_content %q", v)
}

// Package flexcore implements a CSS Flexbox Level 1 layout engine: an
// arena-allocated tree of styled nodes plus the recursive algorithm that
// assigns every node a concrete size and position.
//
// Design Philosophy:
//   - Arena over pointer tree: every node lives in one slice, NodeId is a
//     stable index, and parent back-references are handles rather than
//     owning pointers, so the recursive algorithm can read a node's style
//     by value and write its computed Layout back without fighting
//     Go's aliasing rules
//   - Dirty propagation is the only cross-call cache invalidation path:
//     a mutation clears the mutated node's cache and walks to the root
//   - Mutation API mirrors a composite tree (new/add/remove/replace child)
//     even though the storage is flat, so callers reason about it the way
//     they would about any tree structure
package flexcore

import (
	"github.com/phoenix-tui/flexcore/geometry"
	"github.com/phoenix-tui/flexcore/number"
	"github.com/phoenix-tui/flexcore/style"
)

// NodeId is an opaque handle into a Forest's arena, stable for the life of
// the node it names.
type NodeId uint32

const invalidNodeId NodeId = ^NodeId(0)

type nodeData struct {
	style    style.Style
	measure  MeasureFunc
	children []NodeId
	parent   NodeId // invalidNodeId when root or detached
	isDirty  bool
	layout   Layout
	hasLayout bool
	cache    *cacheEntry
	removed  bool
}

// Forest is the arena holding every node's style, tree links, measure
// callback, and memoized layout. A Forest is not safe for concurrent use;
// callers must serialize mutation and layout calls.
//
// Example:
//
//	f := flexcore.NewForest()
//	leaf, _ := f.NewNode(style.New(), nil)
//	root, _ := f.NewNode(style.New(), []flexcore.NodeId{leaf})
//	f.ComputeLayout(root, geometry.Size[number.Number]{
//		Width:  number.Of(100),
//		Height: number.Undefined(),
//	})
//	layout, _ := f.Layout(leaf)
type Forest struct {
	nodes []nodeData
	diag  DiagRecorder
}

// NewForest returns an empty Forest.
func NewForest() *Forest {
	return &Forest{}
}

// SetDiagRecorder attaches r so every future compute_internal call emits a
// DiagEvent to it. Pass nil to detach. See diagnostics.go and package diag.
func (f *Forest) SetDiagRecorder(r DiagRecorder) {
	f.diag = r
}

func (f *Forest) valid(id NodeId) bool {
	return int(id) < len(f.nodes) && !f.nodes[id].removed
}

// NewNode allocates a node with the given style and initial children.
// Every id in children must be known to the forest and currently
// parentless: an unknown id returns ErrInvalidNode and a node that already
// has a parent returns ErrChildAlreadyAttached, each alongside
// invalidNodeId and without allocating anything.
func (f *Forest) NewNode(s style.Style, children []NodeId) (NodeId, error) {
	for _, c := range children {
		if !f.valid(c) {
			return invalidNodeId, ErrInvalidNode
		}
		if f.nodes[c].parent != invalidNodeId {
			return invalidNodeId, ErrChildAlreadyAttached
		}
	}
	id := NodeId(len(f.nodes))
	f.nodes = append(f.nodes, nodeData{
		style:    s,
		children: append([]NodeId(nil), children...),
		parent:   invalidNodeId,
		isDirty:  true,
	})
	for _, c := range children {
		f.nodes[c].parent = id
	}
	return id, nil
}

// SetStyle replaces a node's style and marks it and its ancestors dirty.
func (f *Forest) SetStyle(id NodeId, s style.Style) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	f.nodes[id].style = s
	f.markDirtyUpward(id)
	return nil
}

// Style returns a node's current style.
func (f *Forest) Style(id NodeId) (style.Style, error) {
	if !f.valid(id) {
		return style.Style{}, ErrInvalidNode
	}
	return f.nodes[id].style, nil
}

// SetMeasure attaches or clears (pass nil) a leaf measure callback.
func (f *Forest) SetMeasure(id NodeId, measure MeasureFunc) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	f.nodes[id].measure = measure
	f.markDirtyUpward(id)
	return nil
}

// SetChildren replaces a node's ordered child list. Previously-owned
// children are detached (they remain allocated, with parent cleared); the
// incoming children must currently be parentless.
func (f *Forest) SetChildren(id NodeId, children []NodeId) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	for _, c := range children {
		if !f.valid(c) {
			return ErrInvalidNode
		}
		if f.nodes[c].parent != invalidNodeId {
			return ErrChildAlreadyAttached
		}
	}
	for _, old := range f.nodes[id].children {
		if f.valid(old) {
			f.nodes[old].parent = invalidNodeId
		}
	}
	f.nodes[id].children = append([]NodeId(nil), children...)
	for _, c := range children {
		f.nodes[c].parent = id
	}
	f.markDirtyUpward(id)
	return nil
}

// AddChild appends a single child to id's child list.
func (f *Forest) AddChild(id NodeId, child NodeId) error {
	if !f.valid(id) || !f.valid(child) {
		return ErrInvalidNode
	}
	if f.nodes[child].parent != invalidNodeId {
		return ErrChildAlreadyAttached
	}
	f.nodes[id].children = append(f.nodes[id].children, child)
	f.nodes[child].parent = id
	f.markDirtyUpward(id)
	return nil
}

// RemoveChild detaches child from id's child list, wherever it sits.
func (f *Forest) RemoveChild(id NodeId, child NodeId) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	kids := f.nodes[id].children
	for i, c := range kids {
		if c == child {
			return f.RemoveChildAtIndex(id, i)
		}
	}
	return ErrChildNotFound
}

// RemoveChildAtIndex detaches the child at index, leaving it allocated
// but parentless.
func (f *Forest) RemoveChildAtIndex(id NodeId, index int) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	kids := f.nodes[id].children
	if index < 0 || index >= len(kids) {
		return ErrChildNotFound
	}
	child := kids[index]
	f.nodes[id].children = append(append([]NodeId(nil), kids[:index]...), kids[index+1:]...)
	if f.valid(child) {
		f.nodes[child].parent = invalidNodeId
	}
	f.markDirtyUpward(id)
	return nil
}

// ReplaceChildAtIndex swaps the child at index for a new, currently
// parentless node.
func (f *Forest) ReplaceChildAtIndex(id NodeId, index int, child NodeId) error {
	if !f.valid(id) || !f.valid(child) {
		return ErrInvalidNode
	}
	if f.nodes[child].parent != invalidNodeId {
		return ErrChildAlreadyAttached
	}
	kids := f.nodes[id].children
	if index < 0 || index >= len(kids) {
		return ErrChildNotFound
	}
	old := kids[index]
	if f.valid(old) {
		f.nodes[old].parent = invalidNodeId
	}
	kids[index] = child
	f.nodes[child].parent = id
	f.markDirtyUpward(id)
	return nil
}

// RemoveNode detaches id from its parent (if any) and drops its entire
// subtree from the arena. Ids within the removed subtree become invalid.
func (f *Forest) RemoveNode(id NodeId) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	parent := f.nodes[id].parent
	if parent != invalidNodeId && f.valid(parent) {
		_ = f.RemoveChild(parent, id)
	}
	f.removeSubtree(id)
	return nil
}

func (f *Forest) removeSubtree(id NodeId) {
	if !f.valid(id) {
		return
	}
	for _, c := range f.nodes[id].children {
		f.removeSubtree(c)
	}
	f.nodes[id].removed = true
	f.nodes[id].children = nil
	f.nodes[id].cache = nil
}

// MarkDirty explicitly dirties id and every ancestor, for use when an
// external input to a measure callback changes out of band.
func (f *Forest) MarkDirty(id NodeId) error {
	if !f.valid(id) {
		return ErrInvalidNode
	}
	f.markDirtyUpward(id)
	return nil
}

func (f *Forest) markDirtyUpward(id NodeId) {
	for id != invalidNodeId && f.valid(id) {
		f.nodes[id].isDirty = true
		f.nodes[id].cache = nil
		id = f.nodes[id].parent
	}
}

// Dirty reports whether id (or any operation reaching it) has invalidated
// its cached layout since the last compute_layout pass cleared it.
func (f *Forest) Dirty(id NodeId) bool {
	if !f.valid(id) {
		return false
	}
	return f.nodes[id].isDirty
}

// Children returns a copy of id's ordered child list.
func (f *Forest) Children(id NodeId) ([]NodeId, error) {
	if !f.valid(id) {
		return nil, ErrInvalidNode
	}
	return append([]NodeId(nil), f.nodes[id].children...), nil
}

// Layout returns the last computed Layout for id. It fails if no layout
// pass has reached this node yet.
func (f *Forest) Layout(id NodeId) (Layout, error) {
	if !f.valid(id) {
		return Layout{}, ErrInvalidNode
	}
	if !f.nodes[id].hasLayout {
		return Layout{}, ErrInvalidNode
	}
	return f.nodes[id].layout, nil
}

func (f *Forest) setLayout(id NodeId, l Layout) {
	f.nodes[id].layout = l
	f.nodes[id].hasLayout = true
}

// ComputeLayout runs the layout algorithm starting at root with the given
// available space, then rounds every reached node's box to integers. It
// clears the dirty flag on every node it visits.
func (f *Forest) ComputeLayout(root NodeId, avail geometry.Size[number.Number]) error {
	if !f.valid(root) {
		return ErrInvalidNode
	}
	rootStyle := f.nodes[root].style

	size := geometry.Size[number.Number]{
		Width:  rootStyle.Size.Width.Resolve(avail.Width).OrElseNumber(avail.Width),
		Height: rootStyle.Size.Height.Resolve(avail.Height).OrElseNumber(avail.Height),
	}

	result, err := f.computeInternal(root, size, avail, true)
	if err != nil {
		return err
	}

	minSize := geometry.Size[number.Number]{
		Width:  rootStyle.MinSize.Width.Resolve(avail.Width),
		Height: rootStyle.MinSize.Height.Resolve(avail.Height),
	}
	maxSize := geometry.Size[number.Number]{
		Width:  rootStyle.MaxSize.Width.Resolve(avail.Width),
		Height: rootStyle.MaxSize.Height.Resolve(avail.Height),
	}
	clampedWidth := number.MaybeMinOnF(number.MaybeMaxOnF(result.Size.Width, minSize.Width), maxSize.Width)
	clampedHeight := number.MaybeMinOnF(number.MaybeMaxOnF(result.Size.Height, minSize.Height), maxSize.Height)

	if clampedWidth != result.Size.Width || clampedHeight != result.Size.Height {
		size.Width = number.Of(clampedWidth)
		size.Height = number.Of(clampedHeight)
		result, err = f.computeInternal(root, size, avail, true)
		if err != nil {
			return err
		}
	}

	f.setLayout(root, Layout{Order: 0, Size: result.Size, Location: geometry.ZeroPoint()})
	f.roundLayout(root, 0, 0)
	f.clearDirty(root)
	return nil
}

func (f *Forest) clearDirty(id NodeId) {
	if !f.valid(id) {
		return
	}
	f.nodes[id].isDirty = false
	for _, c := range f.nodes[id].children {
		f.clearDirty(c)
	}
}

package flexcore

import "math"

// roundLayout walks the tree depth-first after layout completes,
// snapping every node's location and size to integers while preserving
// additivity: each node's rounded size is the difference between the
// rounded absolute edges of its box, not a rounding of the size in
// isolation, so adjacent boxes never develop a stray gap or overlap.
func (f *Forest) roundLayout(id NodeId, absX, absY float32) {
	if !f.valid(id) || !f.nodes[id].hasLayout {
		return
	}
	l := f.nodes[id].layout

	childAbsX := absX + l.Location.X
	childAbsY := absY + l.Location.Y

	roundedW := roundf(childAbsX+l.Size.Width) - roundf(childAbsX)
	roundedH := roundf(childAbsY+l.Size.Height) - roundf(childAbsY)

	l.Location.X = roundf(l.Location.X)
	l.Location.Y = roundf(l.Location.Y)
	l.Size.Width = roundedW
	l.Size.Height = roundedH
	f.nodes[id].layout = l

	for _, c := range f.nodes[id].children {
		f.roundLayout(c, childAbsX, childAbsY)
	}
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// Package scene keeps the ordered list of finished shapes.
package scene

import (
	"github.com/gogpu/gg"

	"github.com/ha1tch/shapedraw/internal/shape"
)

// Store is the ordered shape collection of one editor session.
// Insertion order is draw order: later shapes render on top.
// A Store is owned by the frame loop and is not safe for concurrent use;
// hand Snapshot() to anything running elsewhere.
type Store struct {
	shapes []shape.Shape
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Append adds s on top of the scene.
func (st *Store) Append(s shape.Shape) {
	st.shapes = append(st.shapes, s)
}

// Undo removes the most recently appended shape. It reports false and
// leaves the store unchanged when the store is empty.
func (st *Store) Undo() (shape.Shape, bool) {
	n := len(st.shapes)
	if n == 0 {
		return shape.Shape{}, false
	}
	last := st.shapes[n-1]
	st.shapes[n-1] = shape.Shape{}
	st.shapes = st.shapes[:n-1]
	return last, true
}

// Len returns the number of shapes.
func (st *Store) Len() int {
	return len(st.shapes)
}

// At returns the i-th shape in draw order.
func (st *Store) At(i int) shape.Shape {
	return st.shapes[i]
}

// Shapes returns the shapes in draw order. The slice is a copy.
func (st *Store) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(st.shapes))
	copy(out, st.shapes)
	return out
}

// Snapshot returns an independent copy of the store.
func (st *Store) Snapshot() *Store {
	return &Store{shapes: st.Shapes()}
}

// Clear removes every shape.
func (st *Store) Clear() {
	st.shapes = nil
}

// Transform remaps the coordinates of every shape through m.
// Only the view engine calls this; it must move the grid origin in the
// same step.
func (st *Store) Transform(m gg.Matrix) {
	for i := range st.shapes {
		st.shapes[i] = st.shapes[i].Transformed(m)
	}
}

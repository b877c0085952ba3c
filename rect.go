package canvas

// Rect is a plain rectangle.
type Rect struct {
	Object
}

// NewRect creates a rectangle. Without options it is empty and sits at the
// origin of its parent plane.
func NewRect(opts ...Option) *Rect {
	r := &Rect{}
	r.init(r, opts)
	return r
}

package scenefile

import "github.com/gogpu/canvas"

// Scene is a built object tree.
type Scene struct {
	Name    string
	Objects []canvas.Shape

	byID map[string]canvas.Shape
	ids  map[canvas.Shape]string
}

// Lookup returns the object with the given id.
func (s *Scene) Lookup(id string) (canvas.Shape, bool) {
	obj, ok := s.byID[id]
	return obj, ok
}

// ID returns the id of obj, or "" if obj is not part of the scene.
func (s *Scene) ID(obj canvas.Shape) string {
	return s.ids[obj]
}

// Walk visits every object depth-first in stacking order. Clip paths are
// not visited.
func (s *Scene) Walk(fn func(obj canvas.Shape, depth int)) {
	var walk func(objs []canvas.Shape, depth int)
	walk = func(objs []canvas.Shape, depth int) {
		for _, obj := range objs {
			fn(obj, depth)
			if g, ok := obj.(*canvas.Group); ok {
				walk(g.Shapes(), depth+1)
			}
		}
	}
	walk(s.Objects, 0)
}

// Groups returns every group of the scene, parents before children.
func (s *Scene) Groups() []*canvas.Group {
	var groups []*canvas.Group
	s.Walk(func(obj canvas.Shape, _ int) {
		if g, ok := obj.(*canvas.Group); ok {
			groups = append(groups, g)
		}
	})
	return groups
}

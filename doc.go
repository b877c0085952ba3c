// Package canvas provides a retained 2D scene graph whose groups size and
// position themselves around their members.
//
// # Overview
//
// Every object carries a position, size and transform relative to its
// parent group. Groups delegate their geometry to a [layout.Manager], which
// recomputes it whenever members are added, removed or modified, and
// propagates the change up the group tree.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	a := canvas.NewRect(canvas.WithPosition(0, 0), canvas.WithSize(10, 10))
//	b := canvas.NewRect(canvas.WithPosition(20, 20), canvas.WithSize(10, 10))
//
//	g, err := canvas.NewGroup([]canvas.Shape{a, b})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Dimensions()) // {30 30}
//
//	// Moving a member relayouts the group.
//	b.Modify(canvas.WithPosition(40, 20))
//
// # Coordinate planes
//
// Object positions are expressed in the plane of their parent group, whose
// origin is the group's center. [Object.TransformMatrix] maps an object's
// own plane to the canvas plane.
//
// # Logging
//
// canvas is silent by default. See [SetLogger].
package canvas

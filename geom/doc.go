// Package geom provides the 2D primitives used by the canvas object model
// and its layout manager: points, affine matrices, origins and bounding boxes.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles on objects are expressed in degrees, clockwise on screen
//
// A [Matrix] is a 2x3 row-major affine transform where m.Multiply(n)
// applies n first, then m.
package geom

// Package scene composes the grid of shapes that makes up one sketch.
//
// The package defines the immutable data produced by a composition:
//
//   - [Cell]: position, size, shape and color of one grid unit
//   - [Scene]: the full set of cells plus grid geometry and background
//   - [Composer]: draws a [Scene] from a [random.Source] and a palette registry
//
// # Example
//
//	reg := palette.NewRegistry(palette.Builtin()...)
//	c := scene.NewComposer(scene.DefaultParams(), reg, log)
//	s := c.Compose(scene.CanvasSize(1280, 720), random.New(seed))
//
// A Scene is never mutated after Compose returns, so it can be shared freely
// between renderers and goroutines.
package scene

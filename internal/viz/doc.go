// Package viz provides the terminal preview of a composition.
//
//   - [Canvas]: half-block canvas, two pixels per terminal cell
//   - [RunPreview]: Bubble Tea program showing one scene at a time
//   - [Swatches]: palette rendering for listings
//
// # Key Bindings
//
//	R     - Recompose with a fresh seed
//	N/P   - Step to the next/previous seed
//	S     - Save the current scene as PNG
//	Q     - Quit
package viz

// Package gui shows a composition in a raylib window.
//
// [App.Setup] runs once: it opens a square window and composes the scene.
// Every frame then repaints the same scene, so the window shows a static
// image until the user recomposes.
//
// # Key Bindings
//
//	R          - Recompose with a fresh seed
//	Left/Right - Step to the previous/next seed
//	S          - Save the current scene as PNG
//	Q/Esc      - Quit
package gui

// Package palette provides named color selectors for compositions.
//
//   - [Palette]: a fixed set of named hex colors
//   - [Default]: random HSV colors, used when no palette is available
//   - [Registry]: named selectors with uniform random selection
//
// Custom palettes can be declared in the YAML config and are merged with
// [Builtin] at startup.
package palette

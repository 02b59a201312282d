// Package store persists composed scenes as JSON under a data directory.
//
// Layout:
//
//	<data>/<uuid>/metadata.json
//	<data>/<uuid>/scene.json
package store

// Package export writes composed scenes to files.
//
// Formats are chosen by file extension through a [Registry]:
//
//	png  anti-aliased raster
//	gif  raster quantized to the Plan9 palette
//	svg  vector, one element per cell
package export

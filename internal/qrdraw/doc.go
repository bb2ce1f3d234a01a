// Package qrdraw rasterizes a QR module grid into a monochrome pixel canvas
// and composites that canvas onto a pixel-addressable drawing surface.
//
// The work happens in two passes. [Drawable.Prepare] scales the grid by an
// integer point size, centers it within a square canvas and sets the pixels
// of every dark module. [Draw] then streams one colored pixel per canvas cell
// to a [Target], with black for set cells and white for the rest.
//
// Neither pass is safe for concurrent use on the same [Canvas].
package qrdraw

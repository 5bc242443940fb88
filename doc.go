// Package jminify implements an in-place, streaming JSON minifier.
//
// A single forward pass over a caller-owned byte buffer removes
// insignificant whitespace, canonicalises string escapes, and rewrites
// every number into the shortest textual form that represents the same
// value, optionally after rounding to a configured decimal precision.
// The transform never allocates a second buffer for the document body:
// it compacts accepted bytes down within the same backing array as it
// goes, so the caller can mmap a file, call Minify, and truncate to the
// returned length.
package jminify

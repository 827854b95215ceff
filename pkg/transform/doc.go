// Package transform holds the symbol-level edits applied around the grid walk:
// relocating a misplaced symbol before a block is read out, and normalising the
// assembled text for a downstream substitution solver.
package transform

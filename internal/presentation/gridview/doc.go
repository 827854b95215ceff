// Package gridview renders the diagonal blocks of a layout as tables of walk
// steps or symbols, for terminals (termenv) and as markdown (glamour).
package gridview

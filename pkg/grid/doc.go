/*
Package grid implements the diagonal walk used to undo the Z-340 transposition.

A block of L symbols is viewed as R rows of C columns, cell (row, col) living
at offset row*C + col. The walk starts at (0,0) and after each emitted cell
advances the column by ColStep modulo C and the row by RowStep modulo R. It
stops after exactly Count cells; repeats are not detected.

ReadOut collects the symbols in walk order, optionally leaving out a Window
that is appended verbatim afterwards. Restore is its inverse.
*/
package grid

/*
Package domain contains the core data model of the z340 transposition reverser.

It defines how a ciphertext is cut into blocks and how each block is read
back out, without performing any of the work itself. The grid and transform
packages consume these types. This package is kept free of external
dependencies.

# Key Entities

  - BlockSpec: One contiguous segment of the ciphertext and the rule used to read it out.
  - Layout: The ordered list of blocks covering the whole ciphertext.
  - Coord: A (column, row) position visited by a diagonal walk.
  - Window: A run of cells in one row that is left out of the walk and appended verbatim.
  - Relocation: A single-symbol move applied to a block before it is walked.
*/
package domain

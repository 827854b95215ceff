/*
Package z340 undoes the transposition layer of the Zodiac Z-340 cipher.

The Z-340 was enciphered in two steps: a diagonal transposition of its first
two 153-symbol blocks, then a homophonic substitution. Reversing the first step
produces an intermediate ciphertext that substitution solvers such as AZDecrypt
or CrypTool 2 can attack. The transposition was broken by David Oranchak,
Jarl van Eycke and Sam Black in December 2020.

# Blocks

  - z340-1: rows 1-9, read with a diagonal walk (+2 columns, +1 row, wrapping on a 9x17 grid).
  - z340-2: rows 10-18, same walk after moving one misplaced symbol back 13 cells;
    six untransposed symbols on its first row are skipped and appended at the end.
  - z340-3: rows 19-20, passed through unchanged.

The assembled text is normalized by replacing ";" with "Ä" and "|" with "Ö",
symbols the CrypTool 2 analyzer reserves for its key syntax.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/z340"
		"github.com/aretw0/z340/pkg/corpus"
	)

	func main() {
		r, err := z340.New()
		if err != nil {
			log.Fatal(err)
		}
		res, err := r.Reverse(context.Background(), corpus.Z340)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Text)
	}
*/
package z340

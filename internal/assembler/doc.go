// Package assembler runs a layout over a ciphertext: it splits the text into
// blocks, applies the per-block shift correction and read-out, and reports
// every block through lifecycle hooks.
package assembler

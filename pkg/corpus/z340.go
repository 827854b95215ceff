// Package corpus holds the Z-340 transcription and the block layout used to
// undo its transposition.
package corpus

import "github.com/aretw0/z340/pkg/domain"

// Z340 is the transcription of the Zodiac 340 cipher, 20 rows of 17 symbols,
// as published on the zodiackillerciphers.com cipher comparison page.
const Z340 = "HER>pl^VPk|1LTG2d" +
	"Np+B(#O%DWY.<*Kf)" +
	"By:cM+UZGW()L#zHJ" +
	"Spp7^l8*V3pO++RK2" +
	"_9M+ztjd|5FP+&4k/" +
	"p8R^FlO-*dCkF>2D(" +
	"#5+Kq%;2UcXGV.zL|" +
	"(G2Jfj#O+_NYz+@L9" +
	"d<M+b+ZR2FBcyA64K" + // end of z340-1
	"-zlUV+^J+Op7<FBy-" +
	"U+R/5tE|DYBpbTMKO" +
	"2<clRJ|*5T4M.+&BF" +
	"z69Sy#+N|5FBc(;8R" +
	"lGFN^f524b.cV4t++" +
	"yBX1*:49CE>VUZ5-+" +
	"|c.3zBK(Op^.fMqG2" +
	"RcT+L16C<+FlWB|)L" +
	"++)WCzWcPOSHT/()p" + // end of z340-2
	"|FkdW<7tB_YOB*-Cc" +
	">MDHNpkSzZO8A|K;+" // z340-3

// Block names used by Z340Layout.
const (
	BlockOne   = "z340-1"
	BlockTwo   = "z340-2"
	BlockThree = "z340-3"
)

// Grid shape and walk steps shared by the two transposed blocks.
const (
	Rows    = 9
	Cols    = 17
	ColStep = 2
	RowStep = 1
)

// Z340Layout returns the three-block layout of the Z-340.
//
// The second block carries a symbol that the encoder placed 13 cells after its
// slot (offset 101 instead of 88), and six cells on its first row, columns
// 11 to 16, that were never transposed.
func Z340Layout() domain.Layout {
	return domain.Layout{
		{
			Name:    BlockOne,
			Mode:    domain.ModeDiagonal,
			Length:  Rows * Cols,
			Rows:    Rows,
			Cols:    Cols,
			ColStep: ColStep,
			RowStep: RowStep,
		},
		{
			Name:    BlockTwo,
			Mode:    domain.ModeDiagonal,
			Length:  Rows * Cols,
			Rows:    Rows,
			Cols:    Cols,
			ColStep: ColStep,
			RowStep: RowStep,
			Shift:   &domain.Relocation{From: 101, To: 88},
			Exclude: &domain.Window{Row: 0, FromCol: 11, ToCol: 16},
		},
		{
			// Some words in this block still read backwards after the
			// substitution is solved. Whether that follows an alternating
			// word-order rule or is an encoding mistake is unresolved, so the
			// block is passed through as is.
			Name: BlockThree,
			Mode: domain.ModeVerbatim,
		},
	}
}

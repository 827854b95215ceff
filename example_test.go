package z340_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/z340"
	"github.com/aretw0/z340/pkg/corpus"
	"github.com/aretw0/z340/pkg/domain"
)

// ExampleNew reverses the built-in transcription and prints the start of each block.
func ExampleNew() {
	r, err := z340.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := r.Reverse(context.Background(), corpus.Z340)
	if err != nil {
		log.Fatal(err)
	}

	for _, b := range res.Blocks {
		fmt.Printf("%s %s\n", b.Name, b.Output[:17])
	}
	// Output:
	// z340-1 H+M8|CV@KEB+*5k.L
	// z340-2 -RR+4Ef|pz/JNb>M)
	// z340-3 |FkdW<7tB_YOB*-Cc
}

// ExampleWithLayout reads out a small synthetic grid, walking two columns
// right and one row down per step.
func ExampleWithLayout() {
	layout := domain.Layout{
		{Name: "demo", Mode: domain.ModeDiagonal, Length: 15, Rows: 3, Cols: 5, ColStep: 2, RowStep: 1},
	}

	r, err := z340.New(z340.WithLayout(layout))
	if err != nil {
		log.Fatal(err)
	}

	res, err := r.Reverse(context.Background(), "ABCDEFGHIJKLMNO")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Text)
	// Output:
	// AHOBIKCJLDFMEGN
}

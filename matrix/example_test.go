package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/pagerank/matrix"
)

// ExampleMul demonstrates squaring a doubly stochastic 2×2 matrix — the exact
// operation power iteration repeats each epoch.
func ExampleMul() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0.75, 0.25},
		{0.25, 0.75},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	squared, err := matrix.Mul(m, m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(squared)
	// Output:
	// [0.625, 0.375]
	// [0.375, 0.625]
}

// ExampleColumnSums shows the per-column totals normalization divides by.
func ExampleColumnSums() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{3, 2},
	})

	sums, _ := matrix.ColumnSums(m)
	fmt.Println(sums)
	// Output:
	// [4 2]
}

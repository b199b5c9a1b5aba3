package gradetests

import (
	"github.com/numpyless/grading-harness/numpyless"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/require"
)

func doArrayPropertyTests(g *G) {
	g.Run("shape reports rows and columns", func(t *scoring.T) {
		rows, cols, err := numpyless.Shape(numpyless.Matrix{{1, 2, 3}, {4, 5, 6}})
		requireImplemented(t, err)
		require.Equal(t, 2, rows)
		require.Equal(t, 3, cols)
	})

	g.Run("transpose swaps rows and columns", func(t *scoring.T) {
		m, err := numpyless.Transpose(numpyless.Matrix{{1, 2}, {3, 4}, {5, 6}})
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{1, 3, 5}, {2, 4, 6}}, m)
	})

	g.Run("transposing twice restores the matrix", func(t *scoring.T) {
		original := numpyless.Matrix{{1, 2, 3}, {4, 5, 6}}
		once, err := numpyless.Transpose(original)
		requireImplemented(t, err)
		twice, err := numpyless.Transpose(once)
		requireImplemented(t, err)
		require.Equal(t, original, twice)
	})
}

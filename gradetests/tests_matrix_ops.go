package gradetests

import (
	"github.com/numpyless/grading-harness/numpyless"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/require"
)

func doMatrixOperationTests(g *G) {
	g.Run("matrix addition is element by element", func(t *scoring.T) {
		m, err := numpyless.AddMatrices(
			numpyless.Matrix{{1, 2}, {3, 4}},
			numpyless.Matrix{{5, 6}, {7, 8}},
		)
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{6, 8}, {10, 12}}, m)
	})

	g.Run("matrix scaling multiplies every element", func(t *scoring.T) {
		m, err := numpyless.MultiplyMatrix(2, numpyless.Matrix{{1, 2}, {3, 4}})
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{2, 4}, {6, 8}}, m)
	})

	g.Run("matmul follows the row-by-column rule", func(t *scoring.T) {
		m, err := numpyless.MatMul(
			numpyless.Matrix{{1, 2}, {3, 4}},
			numpyless.Matrix{{5, 6}, {7, 8}},
		)
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{19, 22}, {43, 50}}, m)
	})

	g.Run("matvec applies the matrix to a vector", func(t *scoring.T) {
		v, err := numpyless.MatVec(numpyless.Matrix{{1, 2}}, numpyless.Vector{3, 4})
		requireImplemented(t, err)
		require.Equal(t, numpyless.Vector{11}, v)
	})
}

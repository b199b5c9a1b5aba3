package gradetests

import (
	"github.com/numpyless/grading-harness/numpyless"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/require"
)

func doVectorOperationTests(g *G) {
	g.Run("dot multiplies pairwise and sums", func(t *scoring.T) {
		d, err := numpyless.Dot(numpyless.Vector{1, 2, 3}, numpyless.Vector{4, 5, 6})
		requireImplemented(t, err)
		require.InDelta(t, 32.0, d, 1e-9)
	})

	g.Run("add sums element by element", func(t *scoring.T) {
		v, err := numpyless.Add(numpyless.Vector{1, 2}, numpyless.Vector{3, 4})
		requireImplemented(t, err)
		require.Equal(t, numpyless.Vector{4, 6}, v)
	})

	g.Run("multiply scales every element", func(t *scoring.T) {
		v, err := numpyless.Multiply(2.5, numpyless.Vector{1, 2, 3})
		requireImplemented(t, err)
		require.Equal(t, numpyless.Vector{2.5, 5, 7.5}, v)
	})

	g.Run("norm is the euclidean magnitude", func(t *scoring.T) {
		n, err := numpyless.Norm(numpyless.Vector{3, 4})
		requireImplemented(t, err)
		require.InDelta(t, 5.0, n, 1e-9)
	})
}

package gradetests

import (
	"github.com/numpyless/grading-harness/numpyless"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/require"
)

// Part 2 exercises the same operations at benchmark-sized inputs. There are
// no timing assertions; a correct result at this size is what is graded.
func doBenchmarkTests(g *G) {
	g.Run("dot product over ten thousand elements", func(t *scoring.T) {
		d, err := numpyless.Dot(constantVector(10000, 1), constantVector(10000, 2))
		requireImplemented(t, err)
		require.InDelta(t, 20000.0, d, 1e-6)
	})

	g.Run("norm of a large vector", func(t *scoring.T) {
		n, err := numpyless.Norm(constantVector(10000, 1))
		requireImplemented(t, err)
		require.InDelta(t, 100.0, n, 1e-6)
	})

	g.Run("matmul by the identity leaves the matrix unchanged", func(t *scoring.T) {
		a := sequentialMatrix(50, 50)
		m, err := numpyless.MatMul(identityMatrix(50), a)
		requireImplemented(t, err)
		require.Equal(t, a, m)
	})
}

package gradetests

import (
	"errors"

	"github.com/numpyless/grading-harness/numpyless"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/require"
)

func doDeterminantTests(g *G) {
	g.Run("det of a 2x2 matrix uses the direct formula", func(t *scoring.T) {
		d, err := numpyless.Det(numpyless.Matrix{{4, 3}, {2, 1}})
		requireImplemented(t, err)
		require.InDelta(t, -2.0, d, 1e-9)
	})

	g.Run("det of the identity is one", func(t *scoring.T) {
		d, err := numpyless.Det(identityMatrix(3))
		requireImplemented(t, err)
		require.InDelta(t, 1.0, d, 1e-9)
	})

	g.Run("det rejects a non-square matrix", func(t *scoring.T) {
		_, err := numpyless.Det(numpyless.Matrix{{1, 2, 3}, {4, 5, 6}})
		if errors.Is(err, numpyless.ErrNotImplemented) {
			t.NotImplemented()
		}
		require.Error(t, err)
	})
}

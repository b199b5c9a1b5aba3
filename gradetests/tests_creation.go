package gradetests

import (
	"github.com/numpyless/grading-harness/numpyless"
	"github.com/numpyless/grading-harness/scoring"

	"github.com/stretchr/testify/require"
)

func doArrayCreationTests(g *G) {
	g.Run("zeros creates a zero-filled matrix", func(t *scoring.T) {
		m, err := numpyless.Zeros(2, 3)
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{0, 0, 0}, {0, 0, 0}}, m)
	})

	g.Run("zeros handles a single cell", func(t *scoring.T) {
		m, err := numpyless.Zeros(1, 1)
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{0}}, m)
	})

	g.Run("ones creates a one-filled matrix", func(t *scoring.T) {
		m, err := numpyless.Ones(2, 2)
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{1, 1}, {1, 1}}, m)
	})

	g.Run("identity has ones on the diagonal only", func(t *scoring.T) {
		m, err := numpyless.Identity(3)
		requireImplemented(t, err)
		require.Equal(t, numpyless.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m)
	})
}

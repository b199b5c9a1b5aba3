package numpyless

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The stubs must keep reporting ErrNotImplemented until a real body is
// written, since the grading harness classifies that error specially.
func TestStubsReportNotImplemented(t *testing.T) {
	_, err := Zeros(2, 2)
	assert.True(t, errors.Is(err, ErrNotImplemented))

	_, err = Dot(Vector{1}, Vector{1})
	assert.True(t, errors.Is(err, ErrNotImplemented))

	_, err = Det(Matrix{{1}})
	assert.True(t, errors.Is(err, ErrNotImplemented))
}

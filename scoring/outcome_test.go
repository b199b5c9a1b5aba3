package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTestClassifiesNormalReturnAsPassed(t *testing.T) {
	outcome := runTest(func(*T) {})
	assert.Equal(t, OutcomePassed, outcome.Kind)
}

func TestRunTestClassifiesNotImplemented(t *testing.T) {
	outcome := runTest(func(tt *T) { tt.NotImplemented() })
	assert.Equal(t, OutcomeNotImplemented, outcome.Kind)
}

func TestRunTestClassifiesExpectationFailure(t *testing.T) {
	outcome := runTest(func(tt *T) {
		tt.Errorf("expected %d, got %d", 1, 2)
		tt.FailNow()
	})
	require.Equal(t, OutcomeExpectationFailed, outcome.Kind)
	assert.Equal(t, "expected 1, got 2", outcome.Message)
}

func TestRunTestFailureWithoutFailNowStillFails(t *testing.T) {
	outcome := runTest(func(tt *T) { tt.Errorf("wrong shape") })
	require.Equal(t, OutcomeExpectationFailed, outcome.Kind)
	assert.Equal(t, "wrong shape", outcome.Message)
}

func TestRunTestJoinsMultipleExpectationMessages(t *testing.T) {
	outcome := runTest(func(tt *T) {
		tt.Errorf("first")
		tt.Errorf("second")
	})
	require.Equal(t, OutcomeExpectationFailed, outcome.Kind)
	assert.Equal(t, "first; second", outcome.Message)
}

func TestRunTestFailNowWithoutMessage(t *testing.T) {
	outcome := runTest(func(tt *T) { tt.FailNow() })
	require.Equal(t, OutcomeExpectationFailed, outcome.Kind)
	assert.Equal(t, "test failed with no failure message", outcome.Message)
}

func TestRunTestClassifiesUnexpectedErrorPanic(t *testing.T) {
	outcome := runTest(func(*T) { panic(errors.New("out of range")) })
	require.Equal(t, OutcomeErrored, outcome.Kind)
	assert.Equal(t, "*errors.errorString", outcome.FailureKind)
	assert.Equal(t, "out of range", outcome.Message)
}

func TestRunTestClassifiesNonErrorPanic(t *testing.T) {
	outcome := runTest(func(*T) { panic("kaput") })
	require.Equal(t, OutcomeErrored, outcome.Kind)
	assert.Equal(t, "string", outcome.FailureKind)
	assert.Equal(t, "kaput", outcome.Message)
}

func TestRunTestSupportsTestifyAssertions(t *testing.T) {
	outcome := runTest(func(tt *T) { require.Equal(tt, 1, 2) })
	require.Equal(t, OutcomeExpectationFailed, outcome.Kind)
	assert.Contains(t, outcome.Message, "Not equal")
}

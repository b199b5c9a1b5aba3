package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// TestFunc is the signature of a test body. The body reports problems through
// the provided T; returning normally means the test passed.
type TestFunc func(t *T)

// OutcomeKind is the classification of how a test body terminated.
type OutcomeKind int

const (
	OutcomePassed OutcomeKind = iota
	OutcomeNotImplemented
	OutcomeExpectationFailed
	OutcomeErrored
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePassed:
		return "passed"
	case OutcomeNotImplemented:
		return "not implemented"
	case OutcomeExpectationFailed:
		return "failed"
	default:
		return "errored"
	}
}

// Outcome is the result of running a single test body. Message is set for
// OutcomeExpectationFailed and OutcomeErrored; FailureKind is the type name of
// an unexpected panic value and is only set for OutcomeErrored.
type Outcome struct {
	Kind        OutcomeKind
	Message     string
	FailureKind string
}

// T is used similarly to *testing.T by test bodies. It implements
// require.TestingT so standard testify assertions can be used against it, and
// adds NotImplemented for signaling that the feature under test is absent.
type T struct {
	failed         bool
	notImplemented bool
	errs           []error
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.errs = append(t.errs, fmt.Errorf(format, args...))
}

func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// NotImplemented stops the test and classifies it as not implemented rather
// than failed.
func (t *T) NotImplemented() {
	t.notImplemented = true
	panic(t)
}

// runTest executes a test body and converts whatever way it terminated into an
// Outcome value. Panics raised by T's own control flow are absorbed here; any
// other panic is classified as an unexpected error with the panic value's type
// name preserved for display.
func runTest(test TestFunc) (outcome Outcome) {
	t := &T{}
	defer func() {
		if r := recover(); r != nil {
			if tt, ok := r.(*T); !ok || tt != t {
				outcome = Outcome{
					Kind:        OutcomeErrored,
					FailureKind: fmt.Sprintf("%T", r),
					Message:     panicMessage(r),
				}
				return
			}
			outcome = t.outcome()
		}
	}()
	test(t)
	return t.outcome()
}

func (t *T) outcome() Outcome {
	switch {
	case t.notImplemented:
		return Outcome{Kind: OutcomeNotImplemented}
	case t.failed:
		msg := joinErrors(t.errs)
		if msg == "" {
			msg = "test failed with no failure message"
		}
		return Outcome{Kind: OutcomeExpectationFailed, Message: msg}
	default:
		return Outcome{Kind: OutcomePassed}
	}
}

func panicMessage(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%+v", r)
}

func joinErrors(errs []error) string {
	var ss []string
	for _, err := range errs {
		ss = append(ss, reformatError(err).Error())
	}
	return strings.Join(ss, "; ")
}

// reformatError collapses testify's multi-line assertion output into a single
// line so failure messages fit the one-entry-per-line report format.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var kept []string
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) <= 1 {
		return err
	}
	return errors.New(strings.Join(kept, " "))
}

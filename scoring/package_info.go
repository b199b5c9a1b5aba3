// Package scoring implements the weighted test-scoring harness used to grade
// exercise submissions.
//
// The general model is:
//
// 1. A System holds an ordered collection of named Groups, each with a fixed
// weight budget. Registering a test into a Group runs it immediately and
// classifies its outcome as passed, failed, or not implemented.
//
// 2. A Group's budget is redistributed equally across every test ever
// registered into it, so each test is worth maxWeight/registeredCount after a
// recalculation. Only passed tests contribute to the earned score.
//
// 3. There is a test context type T, similar to Go's *testing.T, that test
// bodies use to report expectation failures or signal that the functionality
// under test is not implemented yet.
//
// The code that knows what is being graded supplies the test bodies and the
// group weights; rendering produces plain text lines and leaves writing them
// to the caller.
//
// Everything runs on the calling goroutine: a test body executes inline
// during registration, with no timeout, so a body that never returns hangs
// the run. Groups and Systems are not safe for concurrent use.
package scoring

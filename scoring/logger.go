package scoring

// ProgressLogger receives the one-line status for each test as it is
// registered. It is a side channel for progress display; the recorded results
// in the Group are the source of truth.
type ProgressLogger interface {
	TestPassed(name string)
	TestNotImplemented(name string)
	TestFailed(name string, message string)
	TestErrored(name string, failureKind string, message string)
}

type nullProgressLogger struct{}

func (n nullProgressLogger) TestPassed(string)                  {}
func (n nullProgressLogger) TestNotImplemented(string)          {}
func (n nullProgressLogger) TestFailed(string, string)          {}
func (n nullProgressLogger) TestErrored(string, string, string) {}

// NullProgressLogger returns a ProgressLogger that discards everything.
func NullProgressLogger() ProgressLogger { return nullProgressLogger{} }

package logging

// NullLogger drops everything. Tests and library callers that only care
// about returned results use it in place of a ConsoleLogger.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(string, ...interface{}) {}
func (l *NullLogger) Info(string, ...interface{})    {}
func (l *NullLogger) Error(string, ...interface{})   {}

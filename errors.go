package tasklog

import "fmt"

// CannotWriteLogsError wraps any I/O failure on the log file path:
// directory creation, file creation, write, or flush.
type CannotWriteLogsError struct {
	Err error
}

func (e *CannotWriteLogsError) Error() string {
	return fmt.Sprintf("cannot write logs: %v", e.Err)
}

func (e *CannotWriteLogsError) Unwrap() error { return e.Err }

// CannotReadLogsError wraps any I/O failure while replaying a log file:
// open or mid-stream read.
type CannotReadLogsError struct {
	Err error
}

func (e *CannotReadLogsError) Error() string {
	return fmt.Sprintf("cannot read logs: %v", e.Err)
}

func (e *CannotReadLogsError) Unwrap() error { return e.Err }

// export_test.go exports private helpers for white-box testing.
package logger

import "io"

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	return newLogger(w)
}

// FormatError exports formatError.
var FormatError = formatError

package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Trace logs a diagnostic message that is only shown in verbose mode.
	Trace(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetVerbose enables or disables trace output.
	SetVerbose(enable bool)
}

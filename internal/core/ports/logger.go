package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogConfig carries the log settings parsed from flags and config file.
type LogConfig struct {
	// Verbose and Quiet shift the console level down or up; Debug wins
	// over both.
	Verbose int
	Quiet   int
	Debug   bool

	// FilePath, when non-empty, tees all records to a log file.
	FilePath string
}

// LogConfigurer reconfigures the logger once the CLI flags are known.
type LogConfigurer interface {
	Configure(cfg LogConfig) error
}

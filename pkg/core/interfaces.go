package core

// Logger interface for render progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}

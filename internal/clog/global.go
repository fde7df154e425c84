package clog

import "io"

// std is the global logger instance used by package-level functions.
var std = NewLogger()

// Configure sets the global level and, if logPath is non-empty, appends log
// lines to that file.
func Configure(level Level, logPath string) error {
	std.SetLevel(level)
	if logPath == "" {
		return nil
	}
	f, err := OpenLogFile(logPath)
	if err != nil {
		return err
	}
	std.SetFileOutput(f)
	return nil
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// SetErrOutput sets the stderr writer for the global logger.
func SetErrOutput(w io.Writer) {
	std.SetErrOutput(w)
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	std.Debug(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	std.Info(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Close closes the file writer if it implements io.Closer.
func Close() error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if closer, ok := std.fileWriter.(io.Closer); ok {
		err := closer.Close()
		std.fileWriter = nil
		return err
	}
	return nil
}

// Reset restores the global logger to its default state.
// Primarily useful for testing.
func Reset() {
	std = NewLogger()
}

package logger

import "strings"

var globalLogger = New(Options{Level: InfoLevel, Format: TextFormat})

// Configure applies level and format strings (typically from config) to
// the global logger. Unknown values leave the current setting in place.
func Configure(level, format string) {
	if l, ok := ParseLevel(level); ok {
		globalLogger.SetLevel(l)
	}
	if f, ok := ParseFormat(format); ok {
		globalLogger.SetFormat(f)
	}
}

// ParseLevel parses a level name, case-insensitively
func ParseLevel(level string) (Level, bool) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}

// ParseFormat parses a format name
func ParseFormat(format string) (Format, bool) {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat, true
	case "text":
		return TextFormat, true
	default:
		return TextFormat, false
	}
}

// Global returns the process-wide logger
func Global() *Logger {
	return globalLogger
}

// Component returns a child of the global logger for a named component
func Component(name string) *Logger {
	return globalLogger.WithComponent(name)
}

// Info logs an info message using the global logger
func Info(message string, fields ...map[string]any) {
	globalLogger.Info(message, fields...)
}

// Warn logs a warning message using the global logger
func Warn(message string, fields ...map[string]any) {
	globalLogger.Warn(message, fields...)
}

// Error logs an error message using the global logger
func Error(message string, err error, fields ...map[string]any) {
	globalLogger.Error(message, err, fields...)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, fields ...map[string]any) {
	globalLogger.Fatal(message, err, fields...)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...any) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...any) {
	globalLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...any) {
	globalLogger.Errorf(format, args...)
}

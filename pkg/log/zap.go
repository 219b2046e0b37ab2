package log

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

// Config describes how the process logger is built.
type Config struct {
	Name        string
	Environment string
	Level       string
	// Format is "json" (default) or "console".
	Format string
}

func init() {
	Configure(Config{Name: os.Getenv("SERVICE_NAME"), Level: os.Getenv("LOG_LEVEL")})
}

// Configure replaces the process logger. Services call it once at startup, after settings are loaded.
func Configure(cfg Config) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "console") {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), ParseLevel(cfg.Level))

	fields := []zap.Field{zap.String("logName", cfg.Name)}
	if cfg.Environment != "" {
		fields = append(fields, zap.String("environment", cfg.Environment))
	}

	Replace(zap.New(core, zap.Fields(fields...), zap.AddCaller(), zap.AddCallerSkip(1)))
}

// Replace swaps the underlying zap logger. Tests use it with zaptest/observer cores.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	Logger = l.Sugar()
}

// ParseLevel maps LOG_LEVEL values (DEBUG, INFO, WARNING, ERROR, CRITICAL) to zap levels.
// Unknown values fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "CRITICAL", "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// L returns the current zap logger without the package caller skip, for components that keep their own logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.WithOptions(zap.AddCallerSkip(-1))
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func sugared() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return Logger
}

// Sync flushes buffered log entries.
func Sync() {
	_ = current().Sync()
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	current().Info(message, fields...)
}

// Infow logs a message with some additional context. The variadic key-value pairs are treated as they are in With.
func Infow(message string, keysAndValues ...interface{}) {
	sugared().Infow(message, keysAndValues...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	sugared().Infof(message, args...)
}

// Debug logs a message at DebugLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Debug(message string, fields ...zap.Field) {
	current().Debug(message, fields...)
}

// Debugf formats the message according to the format specifier and logs it at DebugLevel.
func Debugf(message string, args ...interface{}) {
	sugared().Debugf(message, args...)
}

// Warn logs a message at WarnLevel.
func Warn(message string, fields ...zap.Field) {
	current().Warn(message, fields...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Error(message string, fields ...zap.Field) {
	current().Error(message, fields...)
}

// Errorw logs a message with some additional context. The variadic key-value pairs are treated as they are in With.
func Errorw(message string, keysAndValues ...interface{}) {
	sugared().Errorw(message, keysAndValues...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	sugared().Errorf(message, args...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	current().Fatal(message, fields...)
}

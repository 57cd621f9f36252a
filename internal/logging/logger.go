// Package logging provides categorized logging for codegem on top of zap.
// Everything is written to stderr: stdout carries the JSON-RPC protocol and
// must never receive log output.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem for log attribution.
type Category string

const (
	CategoryBoot   Category = "boot"   // startup and configuration
	CategoryServer Category = "server" // dispatch loop, protocol framing
	CategoryTools  Category = "tools"  // tool execution
	CategoryInput  Category = "input"  // input resolution
	CategoryCache  Category = "cache"  // response cache
	CategoryAPI    Category = "api"    // Gemini API calls
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Initialize builds the stderr logger. Safe to call once at startup;
// before it runs, all logging is a no-op.
func Initialize(level string) error {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn", "warning":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		lvl,
	)

	mu.Lock()
	root = zap.New(core)
	mu.Unlock()
	return nil
}

// Get returns a named sugared logger for the given category.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(string(category)).Sugar()
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Convenience functions, one pair per category.

func Boot(format string, args ...interface{})        { Get(CategoryBoot).Infof(format, args...) }
func BootError(format string, args ...interface{})   { Get(CategoryBoot).Errorf(format, args...) }
func Server(format string, args ...interface{})      { Get(CategoryServer).Infof(format, args...) }
func ServerDebug(format string, args ...interface{}) { Get(CategoryServer).Debugf(format, args...) }
func ServerWarn(format string, args ...interface{})  { Get(CategoryServer).Warnf(format, args...) }
func Tools(format string, args ...interface{})       { Get(CategoryTools).Infof(format, args...) }
func ToolsDebug(format string, args ...interface{})  { Get(CategoryTools).Debugf(format, args...) }
func Input(format string, args ...interface{})       { Get(CategoryInput).Infof(format, args...) }
func InputDebug(format string, args ...interface{})  { Get(CategoryInput).Debugf(format, args...) }
func Cache(format string, args ...interface{})       { Get(CategoryCache).Infof(format, args...) }
func CacheDebug(format string, args ...interface{})  { Get(CategoryCache).Debugf(format, args...) }
func API(format string, args ...interface{})         { Get(CategoryAPI).Infof(format, args...) }
func APIDebug(format string, args ...interface{})    { Get(CategoryAPI).Debugf(format, args...) }
func APIError(format string, args ...interface{})    { Get(CategoryAPI).Errorf(format, args...) }

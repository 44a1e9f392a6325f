package atn

import "go.uber.org/zap"

// logger is package-global, defaulting to a no-op so importing this
// package never produces output an embedding application didn't ask
// for. Call SetLogger during application startup to wire it to
// a real zap.Logger.
var logger = zap.NewNop().Sugar()

// SetLogger installs l as the package's logger. Passing nil restores
// the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// Log returns the current package logger.
func Log() *zap.SugaredLogger { return logger }

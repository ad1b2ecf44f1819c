// Package notify defines the transient notification collaborator the auth
// forms talk to. Calls are fire-and-forget: no return value, no ordering
// guarantee relative to other UI updates.
package notify

import "log/slog"

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) { f(message, severity) }

// Discard drops every notification. Useful for headless callers.
var Discard Notifier = Func(func(string, Severity) {})

// LogNotifier writes notifications through a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier builds a notifier over logger; nil falls back to the
// default logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(message string, severity Severity) {
	switch severity {
	case SeverityError:
		n.logger.Error(message)
	case SeveritySuccess, SeverityInfo:
		n.logger.Info(message, "severity", string(severity))
	default:
		n.logger.Info(message)
	}
}

package app

import (
	"gostorefront_api/pkg/logger"
)

// LogNotifier stands in for the UI toast layer; cart feedback goes to the
// service log instead of a screen.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(title, message string) {
	n.log.Log("%s: %s", title, message)
}

package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
)

// LogService is the service field stamped on records from NewBufferLogger.
const LogService = "hoops-analytics-test"

// NewBufferLogger returns a debug-level text logger built like the service
// logger, plus the buffer it writes to for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Config{Level: "debug", Format: "text", Service: LogService})
	return logger, &buf
}

package api

import (
	"fmt"

	"github.com/umisama/go-regexpcache"
	"go.uber.org/zap"
)

const ClientLoggerPrefix = "HTTP%s\t"

// ClientLogger adapts the zap logger for resty and hides credentials.
type ClientLogger struct {
	logger *zap.SugaredLogger
}

func (l *ClientLogger) Debugf(format string, v ...interface{}) {
	l.logWithoutSecrets("", format, v...)
}

func (l *ClientLogger) Warnf(format string, v ...interface{}) {
	l.logWithoutSecrets("-WARN", format, v...)
}

func (l *ClientLogger) Errorf(format string, v ...interface{}) {
	l.logWithoutSecrets("-ERROR", format, v...)
}

func (l *ClientLogger) logWithoutSecrets(level string, format string, v ...interface{}) {
	v = append([]interface{}{level}, v...)
	msg := fmt.Sprintf(ClientLoggerPrefix+format, v...)
	msg = regexpcache.MustCompile(`(?i)(authorization:?\s*)(bearer\s*)?[^\s]+`).ReplaceAllString(msg, "$1$2*****")
	msg = regexpcache.MustCompile(`(?i)(password=)[^&\s]+`).ReplaceAllString(msg, "$1*****")
	l.logger.Debug(msg)
}

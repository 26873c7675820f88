package http

import (
	"go.uber.org/zap"

	"weather-view/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with the final URL and headers
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapLogger writes HTTP events through the application logger. Bodies are only logged at debug level.
type ZapLogger struct {
	Name string
}

func (l ZapLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("http request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers))
}

func (l ZapLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
	log.Info("http response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("http response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}

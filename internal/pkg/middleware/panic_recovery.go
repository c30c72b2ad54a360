package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// PanicRecoveryWithZapMiddleware turns a panic into a logged 500 response
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	stackTrace := string(debug.Stack())
	req := c.Request()

	callerID := "anonymous"
	if v := c.Get("caller_id"); v != nil {
		callerID = fmt.Sprintf("%v", v)
	}
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	txn := newrelic.FromContext(req.Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("caller_id", callerID),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return nil
	}
	return utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request")
}

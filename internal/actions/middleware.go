package actions

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	dnderr "github.com/KirkDiggler/dnd-damage-application/internal/errors"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
)

// LoggingMiddleware logs every action with its duration and outcome
func LoggingMiddleware(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(req *Request) (*Result, error) {
			start := time.Now()
			result, err := next.Handle(req)

			fields := []zap.Field{
				zap.String("user_id", req.UserID),
				zap.String("domain", req.CustomID.Domain),
				zap.String("action", req.CustomID.Action),
				zap.String("target", req.CustomID.Target),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.String("code", string(dnderr.GetCode(err))), zap.Error(err))
				if meta := dnderr.GetMeta(err); len(meta) > 0 {
					fields = append(fields, zap.Any("meta", meta))
				}
				logger.Warn("action failed", fields...)
				return result, err
			}

			logger.Debug("action handled", fields...)
			return result, nil
		})
	}
}

// RecoveryMiddleware turns a handler panic into an internal error
func RecoveryMiddleware(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(req *Request) (result *Result, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered in action handler",
						zap.String("action", req.CustomID.Action),
						zap.Any("panic", r))
					result = nil
					err = dnderr.Newf(dnderr.CodeInternal, "panic: %v", r)
				}
			}()
			return next.Handle(req)
		})
	}
}

// UserMessage returns what to show a user for an action error
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch dnderr.GetCode(err) {
	case dnderr.CodeNoTargets:
		return application.NoTargetsWarning
	case dnderr.CodeInvalidArgument, dnderr.CodeFailedPrecondition:
		return err.Error()
	case dnderr.CodeNotFound:
		return "That is no longer available."
	default:
		return fmt.Sprintf("Something went wrong (%s).", dnderr.GetCode(err))
	}
}

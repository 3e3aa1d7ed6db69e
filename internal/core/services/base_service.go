package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finstatements/internal/middleware"
)

// BaseService gives services a request-scoped logger tagged with the service name.
type BaseService struct {
	name string
}

// GetLogger returns the request logger from ctx, or the default logger outside a request.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	if s.name != "" {
		logger = logger.With(slog.String("service", s.name))
	}
	return logger
}

// LogError logs err under msg.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := append([]any{slog.String("error", err.Error())}, keyvals...)
	s.GetLogger(ctx).ErrorContext(ctx, msg, args...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).WarnContext(ctx, msg, keyvals...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

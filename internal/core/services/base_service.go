package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/middleware"
	"github.com/SscSPs/retail_ledger_app/internal/platform/metrics"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics *metrics.Metrics
	Clock   func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time in UTC, using the injected clock when set.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// RunInTx runs fn inside a transaction and commits it. Any error rolls the
// transaction back. Attempts that fail with apperrors.ErrConcurrentUpdate are
// retried up to maxRetries more times; kind labels the retry metric.
func (s *BaseService) RunInTx(ctx context.Context, tm portsrepo.TransactionManager, kind string, maxRetries int, fn func(tx pgx.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := s.runOnce(ctx, tm, fn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrConcurrentUpdate) || attempt >= maxRetries || ctx.Err() != nil {
			return err
		}
		s.Metrics.RecordSettlementRetry(kind)
		s.LogWarn(ctx, "Retrying transaction after concurrent update",
			slog.String("kind", kind),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
	}
}

func (s *BaseService) runOnce(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) (err error) {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tm.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tm.Commit(ctx, tx)
}

// storeUnavailable classifies a read failure as StoreUnavailable, keeping
// NotFound and errors that are already classified intact.
func storeUnavailable(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrStoreUnavailable) {
		return err
	}
	return apperrors.NewAppError(http.StatusServiceUnavailable, "failed to query "+what, err)
}

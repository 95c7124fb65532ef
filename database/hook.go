package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Hook, bun.QueryHook implementasyonu. Bun üzerinden çalışan sorguları zap ile loglar.
//
// sql.ErrNoRows hata olarak loglanmaz: "kayıt yok" okuma tarafında
// normal bir sonuçtur (NOT_FOUND), altyapı hatası değildir.
type Hook struct {
	logger *zap.Logger
}

// NewHook, constructor.
func NewHook(logger *zap.Logger) *Hook {
	return &Hook{logger: logger}
}

// BeforeQuery, sorgu öncesi: context'i olduğu gibi geçirir.
func (h *Hook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery, sorgu metnini ve süresini loglar.
func (h *Hook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)

	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		h.logger.Error("Query failed",
			zap.String("query", event.Query),
			zap.Duration("duration", duration),
			zap.Error(event.Err))
		return
	}

	h.logger.Debug("Query executed",
		zap.String("query", event.Query),
		zap.Duration("duration", duration))
}

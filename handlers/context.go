package handlers

import "context"

// contextKey, context'te değer taşımak için özel key tipi.
// String key kullanmak başka paketlerle çakışabilir.
type contextKey string

// CallerIDContextKey, AuthMiddleware'ın doğruladığı kullanıcı ID'sini (int64) taşır.
const CallerIDContextKey contextKey = "caller_id"

// RequestIDContextKey, RequestLogger'ın atadığı request ID'yi taşır.
const RequestIDContextKey contextKey = "request_id"

// CallerIDFromContext, context'teki çağıran ID'sini döner.
func CallerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CallerIDContextKey).(int64)
	return id, ok && id > 0
}

package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader is read from incoming requests and echoed on responses
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID. A caller-supplied X-Request-ID
// is kept, otherwise a random UUID is generated. The ID is stored under
// chi's request ID key so chimiddleware.GetReqID works downstream.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, rid)

		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

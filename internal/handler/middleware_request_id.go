package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var requestID string
		if requestIDFromHeader := r.Header.Get(requestIDHeader); requestIDFromHeader != "" {
			requestID = requestIDFromHeader
		} else {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/weegigs/wee-void/connectors/vhttp"
)

func withLogging(h http.Handler) http.Handler {
	logFn := func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := ulid.MustNew(ulid.Timestamp(start), ulid.DefaultEntropy()).String()

		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		h.ServeHTTP(ww, r)

		fields := log.Fields{
			"id":       id,
			"client":   vhttp.ClientAddress(r),
			"uri":      r.RequestURI,
			"method":   r.Method,
			"status":   ww.Status(),
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
		}

		if span := trace.SpanContextFromContext(r.Context()); span.HasTraceID() {
			fields["trace"] = span.TraceID().String()
		}

		log.WithFields(fields).Info()
	}
	return http.HandlerFunc(logFn)
}

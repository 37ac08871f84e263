package vhttp

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weegigs/wee-void/void"
)

// WithTelemetry traces every request. Spans are named after the void
// request; everything left to the fallback shares a single name.
func WithTelemetry(h http.Handler, name string) http.Handler {
	return otelhttp.NewHandler(h, name, otelhttp.WithSpanNameFormatter(spanName))
}

func spanName(operation string, r *http.Request) string {
	request, err := void.ParsePath(r.URL.Path)
	if err != nil {
		return operation + " fallback"
	}

	return operation + " " + request.String()
}

package void

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "wee-void"

// Dispatch runs request against the void. Only a Request value that neither
// parser can produce results in an error.
func Dispatch(ctx context.Context, request Request, v *Void) (Response, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", request))
	defer span.End()

	var count uint64
	switch request {
	case Increment:
		count = v.Increment()
	case Query:
		count = v.Query()
	default:
		err := UnknownRequest(request)
		span.RecordError(err)
		return Response{}, err
	}

	response := Ok(count)
	span.SetAttributes(attribute.String("void.count", response.Body()))

	return response, nil
}

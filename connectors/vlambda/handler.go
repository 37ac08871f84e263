package vlambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-void/void"
)

type GatewayHandler = func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// NewHandler serves one-shot requests from API Gateway. Invocations share
// nothing but store: screams increment the stored count in place and queries
// read it.
func NewHandler(store void.AtomicStore) GatewayHandler {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		request, err := void.ParseSelector(event.QueryStringParameters["what"])
		if err != nil {
			return respond(void.NewResponse(http.StatusBadRequest, err.Error())), nil
		}

		response, err := handle(ctx, store, request)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		log.Info().
			Str("request", request.String()).
			Str("client", event.RequestContext.HTTP.SourceIP).
			Str("count", response.Body()).
			Msg("handled request")

		return respond(response), nil
	}
}

func handle(ctx context.Context, store void.AtomicStore, request void.Request) (void.Response, error) {
	if request == void.Increment {
		count, err := store.Increment(ctx)
		if err != nil {
			return void.Response{}, errors.Wrap(err, "failed to scream")
		}

		return void.Ok(count), nil
	}

	v, err := void.Restore(ctx, store)
	if err != nil {
		return void.Response{}, err
	}

	return void.Dispatch(ctx, request, v)
}

func respond(response void.Response) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: response.Status(),
		Headers:    map[string]string{"Content-Type": response.ContentType()},
		Body:       response.Body(),
	}
}

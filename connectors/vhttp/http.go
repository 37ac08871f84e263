package vhttp

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-void/void"
)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// Fallback serves every path that is not a void request. It defaults to
// http.NotFoundHandler.
func Fallback(handler http.Handler) HandlerOption {
	return func(service *httpService) {
		service.fallback = handler
	}
}

func NewHandler(v *void.Void, options ...HandlerOption) http.Handler {
	service := &httpService{void: v}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}
	if service.fallback == nil {
		service.fallback = http.NotFoundHandler()
	}

	r := chi.NewRouter()

	r.Use(service.recoverer)

	r.Get("/{request}", service.dispatch())
	r.NotFound(service.fallback.ServeHTTP)
	r.MethodNotAllowed(service.fallback.ServeHTTP)

	return r
}

type httpService struct {
	log      *zerolog.Logger
	void     *void.Void
	fallback http.Handler
}

func (service *httpService) dispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, err := void.ParsePath(r.URL.Path)
		if err != nil {
			service.fallback.ServeHTTP(w, r)
			return
		}

		response, err := void.Dispatch(r.Context(), request, service.void)
		if err != nil {
			service.log.Error().Err(err).Str("request", request.String()).Msg("failed to dispatch request")
			WriteResponse(w, r, void.NewResponse(http.StatusInternalServerError, fmt.Sprintf("%+v\n", err)))
			return
		}

		WriteResponse(w, r, response)
	}
}

// recoverer turns a panic into a 500 response carrying the panic value and
// the stack.
func (service *httpService) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				trace := fmt.Sprintf("panic: %v\n\n%s", recovered, debug.Stack())
				service.log.Error().Str("uri", r.RequestURI).Str("panic", fmt.Sprint(recovered)).Msg("request handler panicked")
				WriteResponse(w, r, void.NewResponse(http.StatusInternalServerError, trace))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// WriteResponse sends response with its status and fixed content type.
func WriteResponse(w http.ResponseWriter, r *http.Request, response void.Response) {
	render.Status(r, response.Status())
	render.HTML(w, r, response.Body())
}

package vcgi

import (
	"net/http"
	"net/http/cgi"

	"github.com/pkg/errors"

	"github.com/weegigs/wee-void/connectors/vhttp"
	"github.com/weegigs/wee-void/void"
)

// Selector is the request parameter naming the operation.
const Selector = "what"

// NewHandler answers a single one-shot request whose operation is chosen by
// the "what" parameter.
func NewHandler(v *void.Void) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := void.ParseSelector(r.URL.Query().Get(Selector))
		if err != nil {
			vhttp.WriteResponse(w, r, void.NewResponse(http.StatusBadRequest, err.Error()))
			return
		}

		response, err := void.Dispatch(r.Context(), request, v)
		if err != nil {
			panic(err)
		}

		vhttp.WriteResponse(w, r, response)
	})
}

// Serve handles the request described by the CGI environment, writing the
// status line, headers and body to standard output. An unknown or missing
// selector is returned as a parse error before anything is written.
func Serve(v *void.Void) error {
	request, err := cgi.Request()
	if err != nil {
		return errors.Wrap(err, "failed to read cgi request")
	}

	if _, err := void.ParseSelector(request.URL.Query().Get(Selector)); err != nil {
		return err
	}

	if err := cgi.Serve(NewHandler(v)); err != nil {
		return errors.Wrap(err, "failed to serve cgi request")
	}

	return nil
}

package void

import (
	"net/http"
	"strconv"
)

// ContentType is what every response declares. The body is plain decimal
// text but clients have always been sent HTML.
const ContentType = "text/html; charset=utf-8"

type Response struct {
	status int
	body   string
}

func NewResponse(status int, body string) Response {
	return Response{status: status, body: body}
}

func Ok(count uint64) Response {
	return NewResponse(http.StatusOK, strconv.FormatUint(count, 10))
}

func (r Response) Status() int {
	return r.status
}

func (r Response) Body() string {
	return r.body
}

func (r Response) ContentType() string {
	return ContentType
}

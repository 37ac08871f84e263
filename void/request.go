package void

import "strings"

// Request is one of the two operations the void understands.
type Request int

const (
	Increment Request = iota + 1
	Query
)

var keywords = map[string]Request{
	"scream":  Increment,
	"screams": Query,
}

func (r Request) String() string {
	switch r {
	case Increment:
		return "scream"
	case Query:
		return "screams"
	}

	return "unknown"
}

// ParsePath maps an HTTP path such as "/scream" onto a Request. Matching is
// exact and case-sensitive.
func ParsePath(path string) (Request, error) {
	if !strings.HasPrefix(path, "/") {
		return 0, InvalidInput(PathInput, path, "must start with a forward slash")
	}

	request, ok := keywords[path[1:]]
	if !ok {
		return 0, InvalidInput(PathInput, path, "unknown request")
	}

	return request, nil
}

// ParseSelector maps a bare operation name, as passed in the "what"
// parameter of one-shot invocations, onto a Request.
func ParseSelector(what string) (Request, error) {
	request, ok := keywords[what]
	if !ok {
		return 0, InvalidInput(SelectorInput, what, "unknown request")
	}

	return request, nil
}

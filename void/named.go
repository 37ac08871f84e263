package void

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf derives a "package:kebab-type" name for value, e.g. "void:saved",
// unless value names itself.
func NameOf(value any) string {
	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	split := strings.Split(reflect.TypeOf(value).String(), ".")
	segments := make([]string, len(split))
	for i, segment := range split {
		segments[i] = strcase.ToKebab(strings.TrimLeft(segment, "*"))
	}

	return segments[0] + ":" + strings.Join(segments[1:], "-")
}

package void

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseValue reads a persisted count: one base-10 non-negative integer,
// optionally signed with a single "+" and surrounded by whitespace.
func ParseValue(text string) (uint64, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "-") {
		return 0, InvalidInput(PersistedInput, text, "negative count")
	}

	value, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, InvalidInput(PersistedInput, text, "count out of range")
		}

		return 0, InvalidInput(PersistedInput, text, "not a base-10 integer")
	}

	return value, nil
}

func FormatValue(value uint64) string {
	return strconv.FormatUint(value, 10)
}

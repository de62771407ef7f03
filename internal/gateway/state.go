package gateway

import (
	"strings"

	"shareit-backend/internal/platform/apperr"
)

var bookingStates = map[string]struct{}{
	"ALL": {}, "CURRENT": {}, "PAST": {}, "FUTURE": {}, "WAITING": {}, "REJECTED": {},
}

// parseState は大文字小文字を区別しない。空は ALL。
func parseState(s string) (string, error) {
	st := strings.ToUpper(strings.TrimSpace(s))
	if st == "" {
		return "ALL", nil
	}
	if _, ok := bookingStates[st]; !ok {
		return "", apperr.ErrInvalid("Unknown state: " + s)
	}
	return st, nil
}

package facade

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments reports arguments that do not match a Signature.
var ErrInvalidArguments = errors.New("invalid arguments")

// Args is the ordered argument list of an invocation.
type Args []any

// String returns argument i as a string, or "" when it is missing or not a
// string.
func (a Args) String(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	s, _ := a[i].(string)
	return s
}

// Signature lists the required argument kinds, one letter per position.
// Only 's' (string) is defined. Extra arguments are allowed.
type Signature string

// Check reports whether args satisfy the signature.
func (s Signature) Check(method string, args []any) error {
	if len(args) < len(s) {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArguments, method, len(s), len(args))
	}
	for i, c := range []byte(s) {
		if !matches(c, args[i]) {
			return fmt.Errorf("%w: %s argument %d must be %s, got %T", ErrInvalidArguments, method, i, kindName(c), args[i])
		}
	}
	return nil
}

func matches(c byte, v any) bool {
	if c != 's' {
		return false
	}
	_, ok := v.(string)
	return ok
}

func kindName(c byte) string {
	if c == 's' {
		return "a string"
	}
	return fmt.Sprintf("kind %q", c)
}

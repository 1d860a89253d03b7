package facade

import (
	"encoding/json"
	"fmt"
)

// Kind is the shape of a Result.
type Kind int

const (
	KindVoid Kind = iota
	KindString
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the value an operation produces. Exactly one field is
// meaningful, selected by Kind.
type Result struct {
	kind Kind
	str  string
	num  int
	flag bool
}

func String(s string) Result { return Result{kind: KindString, str: s} }

func Int(n int) Result { return Result{kind: KindInt, num: n} }

func Bool(b bool) Result { return Result{kind: KindBool, flag: b} }

// Void is the result of side-effect-only operations.
func Void() Result { return Result{kind: KindVoid} }

func (r Result) Kind() Kind { return r.kind }

// Str returns the string value, or "" for other kinds.
func (r Result) Str() string { return r.str }

// Int returns the integer value, or 0 for other kinds.
func (r Result) Int() int { return r.num }

// Bool returns the boolean value, or false for other kinds.
func (r Result) Bool() bool { return r.flag }

// Value returns the result as a plain Go value (nil for void).
func (r Result) Value() any {
	switch r.kind {
	case KindString:
		return r.str
	case KindInt:
		return r.num
	case KindBool:
		return r.flag
	default:
		return nil
	}
}

// MarshalJSON encodes the bare value; void encodes as null.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

func (r Result) String() string {
	if r.kind == KindVoid {
		return "<void>"
	}
	return fmt.Sprint(r.Value())
}

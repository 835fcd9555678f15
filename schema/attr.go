package schema

import (
	"encoding/json"
)

// state tracks which variant a resolvable attribute holds.
type state uint8

const (
	unset state = iota
	literal
	callback
	invalid
)

// BoolFunc computes a boolean attribute from the call context.
type BoolFunc func(Context) bool

// StringFunc computes a string attribute from the call context.
type StringFunc func(Context) string

// StringsFunc computes a list attribute (usually a field order) from the call context.
type StringsFunc func(Context) []string

// Bool is a boolean resolvable attribute: unset, a literal, a callback, or
// a value of the wrong type. The zero value is unset.
type Bool struct {
	state state
	value bool
	fn    BoolFunc
}

// BoolValue returns a literal boolean attribute.
func BoolValue(v bool) Bool {
	return Bool{state: literal, value: v}
}

// BoolCallback returns a callback attribute. A nil fn yields an unset attribute.
func BoolCallback(fn BoolFunc) Bool {
	if fn == nil {
		return Bool{}
	}
	return Bool{state: callback, fn: fn}
}

// BoolFrom converts a dynamically typed value: nil is unset, a bool is a
// literal, a func is a callback and anything else is invalid.
func BoolFrom(v any) Bool {
	switch t := v.(type) {
	case nil:
		return Bool{}
	case Bool:
		return t
	case bool:
		return BoolValue(t)
	case BoolFunc:
		return BoolCallback(t)
	case func(Context) bool:
		return BoolCallback(t)
	default:
		return Bool{state: invalid}
	}
}

// IsSet reports whether the attribute holds anything, valid or not.
func (b Bool) IsSet() bool { return b.state != unset }

// IsCallback reports whether the attribute is a callback.
func (b Bool) IsCallback() bool { return b.state == callback }

// IsInvalid reports whether the attribute holds a value of the wrong type.
func (b Bool) IsInvalid() bool { return b.state == invalid }

// Literal returns the literal value and whether the attribute is a literal.
func (b Bool) Literal() (bool, bool) {
	return b.value, b.state == literal
}

// Func returns the callback, or nil.
func (b Bool) Func() BoolFunc { return b.fn }

// resolve applies the value-or-callback rule. Invalid values resolve to false.
func (b Bool) resolve(ctx Context, def bool) bool {
	switch b.state {
	case unset:
		return def
	case literal:
		return b.value
	case callback:
		return b.fn(ctx)
	default:
		return false
	}
}

// literalOr reads a literal-only attribute: unset gives def, anything that
// is not a literal gives false.
func (b Bool) literalOr(def bool) bool {
	switch b.state {
	case unset:
		return def
	case literal:
		return b.value
	default:
		return false
	}
}

// UnmarshalJSON decodes true/false as literals, null as unset and anything
// else as an invalid attribute.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = BoolFrom(v)
	return nil
}

// String is a string resolvable attribute. The zero value is unset.
type String struct {
	state state
	value string
	fn    StringFunc
}

// StringValue returns a literal string attribute.
func StringValue(v string) String {
	return String{state: literal, value: v}
}

// StringCallback returns a callback attribute. A nil fn yields an unset attribute.
func StringCallback(fn StringFunc) String {
	if fn == nil {
		return String{}
	}
	return String{state: callback, fn: fn}
}

// StringFrom converts a dynamically typed value the way BoolFrom does.
func StringFrom(v any) String {
	switch t := v.(type) {
	case nil:
		return String{}
	case String:
		return t
	case string:
		return StringValue(t)
	case StringFunc:
		return StringCallback(t)
	case func(Context) string:
		return StringCallback(t)
	default:
		return String{state: invalid}
	}
}

// IsSet reports whether the attribute holds anything, valid or not.
func (s String) IsSet() bool { return s.state != unset }

// IsCallback reports whether the attribute is a callback.
func (s String) IsCallback() bool { return s.state == callback }

// Literal returns the literal value and whether the attribute is a literal.
func (s String) Literal() (string, bool) {
	return s.value, s.state == literal
}

// resolve applies the value-or-callback rule. Invalid values fall back to def.
func (s String) resolve(ctx Context, def string) string {
	switch s.state {
	case literal:
		return s.value
	case callback:
		return s.fn(ctx)
	default:
		return def
	}
}

// UnmarshalJSON decodes strings as literals, null as unset and anything
// else as an invalid attribute.
func (s *String) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StringFrom(v)
	return nil
}

// Strings is a list resolvable attribute. The zero value is unset.
type Strings struct {
	state state
	value []string
	fn    StringsFunc
}

// StringsValue returns a literal list attribute.
func StringsValue(v ...string) Strings {
	if v == nil {
		v = []string{}
	}
	return Strings{state: literal, value: v}
}

// StringsCallback returns a callback attribute. A nil fn yields an unset attribute.
func StringsCallback(fn StringsFunc) Strings {
	if fn == nil {
		return Strings{}
	}
	return Strings{state: callback, fn: fn}
}

// StringsFrom converts a dynamically typed value. Lists decoded from JSON
// ([]any) are literals only when every element is a string.
func StringsFrom(v any) Strings {
	switch t := v.(type) {
	case nil:
		return Strings{}
	case Strings:
		return t
	case []string:
		return StringsValue(t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return Strings{state: invalid}
			}
			out = append(out, s)
		}
		return StringsValue(out...)
	case StringsFunc:
		return StringsCallback(t)
	case func(Context) []string:
		return StringsCallback(t)
	default:
		return Strings{state: invalid}
	}
}

// IsSet reports whether the attribute holds anything, valid or not.
func (s Strings) IsSet() bool { return s.state != unset }

// IsCallback reports whether the attribute is a callback.
func (s Strings) IsCallback() bool { return s.state == callback }

// Literal returns the literal list and whether the attribute is a literal.
func (s Strings) Literal() ([]string, bool) {
	return s.value, s.state == literal
}

// resolve applies the value-or-callback rule. Invalid values fall back to def.
func (s Strings) resolve(ctx Context, def []string) []string {
	switch s.state {
	case literal:
		return s.value
	case callback:
		return s.fn(ctx)
	default:
		return def
	}
}

// UnmarshalJSON decodes string arrays as literals, null as unset and
// anything else as an invalid attribute.
func (s *Strings) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StringsFrom(v)
	return nil
}

package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a dynamically typed scalar or sequence as used by the sorting and
// deduplication utilities. It is a tagged union over undefined, booleans,
// numbers, strings and lists of values. Compare defines a strict total order
// over all values, so sorting heterogeneous lists can never fail.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
	list []Value
}

type ValueKind int

// Type precedence for Compare, lowest first.
const (
	UndefinedKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
	ListKind
)

func (kind ValueKind) String() string {
	switch kind {
	case UndefinedKind:
		return "undefined"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ListKind:
		return "list"
	}
	return "invalid"
}

// Undef returns the undefined value.
func Undef() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// Num returns a numeric value.
func Num(f float64) Value {
	return Value{kind: NumberKind, n: f}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: StringKind, s: s}
}

// List returns a list value of the given elements.
func List(vs ...Value) Value {
	return Value{kind: ListKind, list: vs}
}

// Nums returns a list value of numbers.
func Nums(fs ...float64) Value {
	vs := make([]Value, len(fs))
	for i, f := range fs {
		vs[i] = Num(f)
	}
	return List(vs...)
}

// Kind returns the type tag of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Bool returns the boolean content, false for other kinds.
func (v Value) Bool() bool {
	return v.kind == BoolKind && v.b
}

// Num returns the numeric content, zero for other kinds.
func (v Value) Num() float64 {
	if v.kind != NumberKind {
		return 0.0
	}
	return v.n
}

// Str returns the string content, empty for other kinds.
func (v Value) Str() string {
	if v.kind != StringKind {
		return ""
	}
	return v.s
}

// List returns the list elements, nil for other kinds.
func (v Value) List() []Value {
	if v.kind != ListKind {
		return nil
	}
	return v.list
}

func (v Value) String() string {
	switch v.kind {
	case UndefinedKind:
		return "undef"
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case StringKind:
		return strconv.Quote(v.s)
	}
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, w := range v.list {
		if i != 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(w.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Compare returns -1, 0, or +1 when a sorts before, equal to, or after b.
// Values of different kinds order by type precedence: undefined < bool <
// number < string < list. Booleans order false < true, numbers numerically,
// strings bytewise, and lists element-wise with a strict prefix sorting
// before the longer list.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case UndefinedKind:
		return 0
	case BoolKind:
		if a.b == b.b {
			return 0
		} else if !a.b {
			return -1
		}
		return 1
	case NumberKind:
		if a.n < b.n {
			return -1
		} else if b.n < a.n {
			return 1
		}
		return 0
	case StringKind:
		return strings.Compare(a.s, b.s)
	case ListKind:
		for i := 0; i < len(a.list) && i < len(b.list); i++ {
			if cmp := Compare(a.list[i], b.list[i]); cmp != 0 {
				return cmp
			}
		}
		if len(a.list) != len(b.list) {
			if len(a.list) < len(b.list) {
				return -1
			}
			return 1
		}
		return 0
	}
	panic(fmt.Sprintf("bug: invalid value kind %d", a.kind))
}

package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Object is the interface that all Hex runtime values implement.
type Object interface {
	Kind() ObjectKind
	Inspect() string
}

// ObjectKind represents the type of a value using an enum for fast comparisons.
type ObjectKind uint8

const (
	KindInvalid ObjectKind = iota
	KindNumber
	KindString
	KindBoolean
	KindNil
	KindCollection
	KindError
)

func (k ObjectKind) String() string {
	switch k {
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindBoolean:
		return "BOOLEAN"
	case KindNil:
		return "NIL"
	case KindCollection:
		return "COLLECTION"
	case KindError:
		return "ERROR"
	default:
		return "INVALID"
	}
}

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// Number is the single numeric type: a 64-bit float, whether the literal
// looked like an integer or not.
type Number struct {
	Value float64
}

func (n *Number) Kind() ObjectKind { return KindNumber }
func (n *Number) Inspect() string  { return FormatNumber(n.Value) }

// FormatNumber renders a float without exponent notation, using the
// shortest decimal form that round-trips. Non-finite values spell out as
// inf, -inf and NaN.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type String struct {
	Value string
}

func (s *String) Kind() ObjectKind { return KindString }
func (s *String) Inspect() string  { return s.Value }

type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() ObjectKind { return KindBoolean }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Nil is the unit value: the result of declarations and side-effecting
// calls like io::print.
type Nil struct{}

func (n *Nil) Kind() ObjectKind { return KindNil }
func (n *Nil) Inspect() string  { return "nil" }

// BooleanFor returns the shared singleton for a native bool.
func BooleanFor(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// IsTruthy reports how a value behaves as a condition: false and nil are
// falsy, as is an empty collection; everything else is truthy.
func IsTruthy(obj Object) bool {
	switch obj := obj.(type) {
	case *Boolean:
		return obj.Value
	case *Nil:
		return false
	case *Collection:
		return len(obj.entries) > 0
	default:
		return true
	}
}

// Equals is deep equality across values; differing kinds are never equal.
func Equals(left, right Object) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case *Number:
		return l.Value == right.(*Number).Value
	case *String:
		return l.Value == right.(*String).Value
	case *Boolean:
		return l.Value == right.(*Boolean).Value
	case *Nil:
		return true
	case *Collection:
		r := right.(*Collection)
		if len(l.entries) != len(r.entries) || l.size != r.size {
			return false
		}
		for k, lv := range l.entries {
			rv, ok := r.entries[k]
			if !ok || !Equals(lv, rv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare orders two values. It returns the ordering and whether the pair
// is comparable at all: numbers, strings and booleans order against their
// own kind, every other pairing is unordered (and any comparison on it
// yields false).
func Compare(left, right Object) (int, bool) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			switch {
			case l.Value < r.Value:
				return -1, true
			case l.Value > r.Value:
				return 1, true
			case l.Value == r.Value:
				return 0, true
			}
			return 0, false // NaN involved
		}
	case *String:
		if r, ok := right.(*String); ok {
			return strings.Compare(l.Value, r.Value), true
		}
	case *Boolean:
		if r, ok := right.(*Boolean); ok {
			lv, rv := 0, 0
			if l.Value {
				lv = 1
			}
			if r.Value {
				rv = 1
			}
			return lv - rv, true
		}
	}
	return 0, false
}

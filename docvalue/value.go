// Package docvalue provides a closed representation of arbitrary
// JSON-compatible values.
//
// A Value is one of: null, bool, int, float, string, sequence, or map.
// Map entries keep their insertion order through every transformation and
// both output encodings. Values are immutable once constructed; builders
// use them to carry example payloads, enum members, defaults, and vendor
// extensions of unknown shape.
//
// Native Go values cross into this representation through exactly one
// audited function, FromNative, which never coerces scalar kinds: a numeric
// string stays a string, an int stays an int.
package docvalue

import "fmt"

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a 64-bit floating point number.
	KindFloat
	// KindString is a string.
	KindString
	// KindSeq is an ordered sequence of values.
	KindSeq
	// KindMap is an ordered mapping of unique string keys to values.
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a single key/value pair of a map value.
type Entry struct {
	Key   string
	Value Value
}

// Value is an immutable JSON-compatible value. The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	seq     []Value
	entries []Entry
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Seq returns a sequence value holding items in the given order.
func Seq(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSeq, seq: seq}
}

// Map returns a map value holding entries in the given order. A duplicate
// key keeps the position of its first occurrence and the value of its last.
func Map(entries ...Entry) Value {
	out := make([]Entry, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if at, seen := index[e.Key]; seen {
			out[at].Value = e.Value
			continue
		}
		index[e.Key] = len(out)
		out = append(out, e)
	}
	return Value{kind: KindMap, entries: out}
}

// Pair constructs a map entry.
func Pair(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. It returns false when v is not a bool;
// check Kind first when the variant matters.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload, or zero for other kinds.
func (v Value) Int() int64 {
	return v.i
}

// Float returns the floating point payload, or zero for other kinds.
func (v Value) Float() float64 {
	return v.f
}

// Str returns the string payload, or "" for other kinds.
func (v Value) Str() string {
	return v.s
}

// Len returns the number of items in a sequence or entries in a map,
// and zero for scalar kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq:
		return len(v.seq)
	case KindMap:
		return len(v.entries)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence. It panics if v is not a
// sequence or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindSeq {
		panic(fmt.Sprintf("docvalue: Index on %s value", v.kind))
	}
	return v.seq[i]
}

// Get returns the value stored under key in a map value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the map keys in insertion order, or nil for other kinds.
func (v Value) Keys() []string {
	if v.kind != KindMap || len(v.entries) == 0 {
		return nil
	}
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the map entries in insertion order.
func (v Value) Entries() []Entry {
	if v.kind != KindMap || len(v.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Items returns a copy of the sequence items.
func (v Value) Items() []Value {
	if v.kind != KindSeq || len(v.seq) == 0 {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Equal reports whether two values are structurally equal. Scalar kinds
// are compared strictly: Int(1) and Float(1) are not equal, and neither
// is Str("1").
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindSeq:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for i := range v.entries {
			if v.entries[i].Key != o.entries[i].Key {
				return false
			}
			if !v.entries[i].Value.Equal(o.entries[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns a compact JSON-ish rendering, for debugging.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("docvalue.Value(%s)", v.kind)
	}
	return string(data)
}

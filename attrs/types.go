package attrs

// Kind identifies which field of a Value is populated.
type Kind uint8

const (
	// KindInvalid marks the zero Value; no attribute should ever carry it.
	KindInvalid Kind = iota
	KindInt64
	KindFloat64
	KindBool
	KindString
	KindBytes
)

// Value is a tagged union over the primitive attribute types the engine
// understands. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Bin   []byte
}

// Int64Value wraps an int64 as an attribute Value.
func Int64Value(v int64) Value { return Value{Kind: KindInt64, Int: v} }

// Float64Value wraps a float64 as an attribute Value.
func Float64Value(v float64) Value { return Value{Kind: KindFloat64, Float: v} }

// BoolValue wraps a bool as an attribute Value.
func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// StringValue wraps a string as an attribute Value.
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

// BytesValue wraps a byte slice as an attribute Value. The slice is not
// copied; callers must not mutate it after handing it to a Bag.
func BytesValue(v []byte) Value { return Value{Kind: KindBytes, Bin: v} }

// Equal reports whether v and other carry the same Kind and payload.
// Values of differing Kind are never equal, even if numerically comparable
// (Int64Value(1) != Float64Value(1)) — attribute predicates are meant to
// catch schema drift between motif and host, not paper over it.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInt64:
		return v.Int == other.Int
	case KindFloat64:
		return v.Float == other.Float
	case KindBool:
		return v.Bool == other.Bool
	case KindString:
		return v.Str == other.Str
	case KindBytes:
		return string(v.Bin) == string(other.Bin)
	default:
		return false
	}
}

// Bag is a vertex's or edge's attribute set.
type Bag map[string]Value

// Get returns the value stored at key and whether it was present.
func (b Bag) Get(key string) (Value, bool) {
	v, ok := b[key]
	return v, ok
}

// Equal reports whether b and other hold exactly the same keys and values.
// It is used only by tests; predicates compare individual keys directly
// per the subset rule in spec.md §4.2, not whole-bag equality.
func (b Bag) Equal(other Bag) bool {
	if len(b) != len(other) {
		return false
	}
	for k, v := range b {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

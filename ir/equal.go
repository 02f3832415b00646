package ir

import (
	"math"
	"math/big"
)

// Equal reports whether a and b are the same JSON value.
//
// Values of different types are never equal. Numbers compare by numeric
// value, so 1, 1.0 and 1e0 are equal. Strings compare by content, arrays
// element by element and objects by member count and per-key equality
// without regard to member order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		return equalArrays(a, b)
	case ObjectType:
		return equalObjects(a, b)
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	ra, ok := numberRat(a)
	if !ok {
		return false
	}
	rb, ok := numberRat(b)
	if !ok {
		return false
	}
	return ra.Cmp(rb) == 0
}

func numberRat(n *Node) (*big.Rat, bool) {
	switch {
	case n.Int64 != nil:
		return new(big.Rat).SetInt64(*n.Int64), true
	case n.Number != "":
		return new(big.Rat).SetString(n.Number)
	case n.Float64 != nil:
		f := *n.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(f), true
	}
	return nil, false
}

func equalArrays(a, b *Node) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func equalObjects(a, b *Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i, f := range a.Fields {
		j := b.FieldIndex(f.String)
		if j == -1 {
			return false
		}
		if !Equal(a.Values[i], b.Values[j]) {
			return false
		}
	}
	return true
}

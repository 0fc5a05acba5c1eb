package semantic

import (
	"net/netip"
	"strconv"
)

// Value is a tagged union over the semantic types. The zero Value is invalid.
type Value struct {
	typ  TypeEnum
	text string
	num  int64
	addr netip.Addr
}

func Text(s string) Value { return Value{typ: TypeText, text: s} }

func Int(n int64) Value { return Value{typ: TypeInteger, num: n} }

func Addr(a netip.Addr) Value { return Value{typ: TypeAddress, addr: a} }

// Type returns the semantic type carried by v.
func (v Value) Type() TypeEnum { return v.typ }

func (v Value) IsValid() bool { return v.typ.IsValid() }

func (v Value) AsText() (string, bool) { return v.text, v.typ == TypeText }

func (v Value) AsInt() (int64, bool) { return v.num, v.typ == TypeInteger }

func (v Value) AsAddr() (netip.Addr, bool) { return v.addr, v.typ == TypeAddress }

// Equal reports whether both values carry the same type and payload.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}

	switch v.typ {
	case TypeText:
		return v.text == o.text
	case TypeInteger:
		return v.num == o.num
	case TypeAddress:
		return v.addr == o.addr
	default:
		return true
	}
}

// String renders the payload without type decoration.
func (v Value) String() string {
	switch v.typ {
	case TypeText:
		return v.text
	case TypeInteger:
		return strconv.FormatInt(v.num, 10)
	case TypeAddress:
		return v.addr.String()
	default:
		return "<invalid>"
	}
}

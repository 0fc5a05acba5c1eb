package semantic

import (
	"errors"
	"fmt"
	"math"
	"net"
	"net/netip"
	"strings"
)

var (
	ErrIntegerOverflow = errors.New("integer does not fit into int64")
	ErrInvalidAddress  = errors.New("invalid network address")
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer widens n to the canonical int64 representation.
// Unsigned sources above math.MaxInt64 are rejected rather than wrapped.
func Integer[T integer](n T) (Value, error) {
	if n < 0 {
		return Int(int64(n)), nil
	}

	if uint64(n) > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d", ErrIntegerOverflow, uint64(n))
	}

	return Int(int64(n)), nil
}

// Uint64 is the non-generic form of Integer for unsigned sources.
func Uint64(n uint64) (Value, error) {
	return Integer(n)
}

// IP converts a net.IP into an Address value.
// An empty IP is treated as absent and reports ok=false.
func IP(ip net.IP) (v Value, ok bool, err error) {
	if len(ip) == 0 {
		return Value{}, false, nil
	}

	addr, valid := netip.AddrFromSlice(ip)
	if !valid {
		return Value{}, false, fmt.Errorf("%w: %d bytes", ErrInvalidAddress, len(ip))
	}

	return Addr(addr.Unmap()), true, nil
}

// Pair is one entry of an ordered key/value sequence.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered key/value sequence flattened into a single Text value.
type Pairs []Pair

// Flatten concatenates "key:value\n" for every pair in order.
// It reports ok=false when the result is empty.
func Flatten[S ~[]Pair](pairs S) (Value, bool) {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.Key)
		b.WriteByte(':')
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}

	if b.Len() == 0 {
		return Value{}, false
	}

	return Text(b.String()), true
}

// FlattenArrays is Flatten for [][2]string sequences.
func FlattenArrays[S ~[][2]string](pairs S) (Value, bool) {
	converted := make([]Pair, len(pairs))
	for i, p := range pairs {
		converted[i] = Pair{Key: p[0], Value: p[1]}
	}

	return Flatten(converted)
}

package resolve_test

import (
	"net"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filterable/resolve"
	"filterable/semantic"
)

type (
	Status  string
	Code    uint16
	Headers []semantic.Pair
	OptText *string
)

func TestResolve_Builtins(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		want semantic.TypeEnum
	}{
		{reflect.TypeFor[string](), semantic.TypeText},
		{reflect.TypeFor[Status](), semantic.TypeText},
		{reflect.TypeFor[int](), semantic.TypeInteger},
		{reflect.TypeFor[int8](), semantic.TypeInteger},
		{reflect.TypeFor[int16](), semantic.TypeInteger},
		{reflect.TypeFor[int32](), semantic.TypeInteger},
		{reflect.TypeFor[int64](), semantic.TypeInteger},
		{reflect.TypeFor[uint](), semantic.TypeInteger},
		{reflect.TypeFor[uint8](), semantic.TypeInteger},
		{reflect.TypeFor[uint16](), semantic.TypeInteger},
		{reflect.TypeFor[uint32](), semantic.TypeInteger},
		{reflect.TypeFor[uint64](), semantic.TypeInteger},
		{reflect.TypeFor[uintptr](), semantic.TypeInteger},
		{reflect.TypeFor[Code](), semantic.TypeInteger},
		{reflect.TypeFor[net.IP](), semantic.TypeAddress},
		{reflect.TypeFor[netip.Addr](), semantic.TypeAddress},
		{reflect.TypeFor[[]semantic.Pair](), semantic.TypeText},
		{reflect.TypeFor[semantic.Pairs](), semantic.TypeText},
		{reflect.TypeFor[Headers](), semantic.TypeText},
		{reflect.TypeFor[[][2]string](), semantic.TypeText},
	}

	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			res, err := resolve.Default().Resolve(tc.typ)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Type())
			assert.Zero(t, res.Optional)
		})
	}
}

func TestResolve_OptionalKeepsInnerType(t *testing.T) {
	res, err := resolve.Default().Resolve(reflect.TypeFor[**netip.Addr]())
	require.NoError(t, err)
	assert.Equal(t, semantic.TypeAddress, res.Type())
	assert.Equal(t, 2, res.Optional)
	assert.Equal(t, reflect.TypeFor[netip.Addr](), res.Base)
}

func TestResolve_NamedPointer(t *testing.T) {
	res, err := resolve.Default().Resolve(reflect.TypeFor[OptText]())
	require.NoError(t, err)
	assert.Equal(t, semantic.TypeText, res.Type())
	assert.Equal(t, 1, res.Optional)

	s := "x"
	v, ok, err := res.Value(reflect.ValueOf(OptText(&s)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, semantic.Text("x"), v)

	_, ok, err = res.Value(reflect.ValueOf(OptText(nil)))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolve_Unsupported(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[[]byte](),
		reflect.TypeFor[map[string]string](),
		reflect.TypeFor[*struct{}](),
		reflect.TypeFor[[]string](),
		nil,
	} {
		_, err := resolve.Default().Resolve(typ)
		assert.ErrorIs(t, err, resolve.ErrUnsupportedType, "type %v", typ)
	}
}

func TestResolution_Value(t *testing.T) {
	res, err := resolve.Default().Resolve(reflect.TypeFor[*string]())
	require.NoError(t, err)

	var absent *string
	_, ok, err := res.Value(reflect.ValueOf(absent))
	require.NoError(t, err)
	assert.False(t, ok)

	d := "D"
	v, ok, err := res.Value(reflect.ValueOf(&d))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, semantic.Text("D"), v)

	res, err = resolve.Default().Resolve(reflect.TypeFor[Headers]())
	require.NoError(t, err)
	v, ok, err = res.Value(reflect.ValueOf(Headers{{Key: "k", Value: "v"}}))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, semantic.Text("k:v\n"), v)

	_, ok, err = res.Value(reflect.ValueOf(Headers{}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := resolve.Default().Clone()
	entry := resolve.Entry{
		Type: semantic.TypeInteger,
		Adapt: func(v reflect.Value) (semantic.Value, bool, error) {
			return semantic.Int(int64(v.Interface().(time.Duration) / time.Millisecond)), true, nil
		},
	}

	require.NoError(t, r.Register(reflect.TypeFor[time.Duration](), entry))
	assert.ErrorIs(t, r.Register(reflect.TypeFor[time.Duration](), entry), resolve.ErrAlreadyExists)
	assert.Error(t, r.Register(reflect.TypeFor[*time.Duration](), entry))
	assert.Error(t, r.Register(reflect.TypeFor[bool](), resolve.Entry{Type: semantic.TypeText}))

	res, err := r.Resolve(reflect.TypeFor[*time.Duration]())
	require.NoError(t, err)
	d := 1500 * time.Millisecond
	v, ok, err := res.Value(reflect.ValueOf(&d))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, semantic.Int(1500), v)

	// the shared default stays untouched
	_, ok = resolve.Default().Lookup(reflect.TypeFor[time.Duration]())
	assert.True(t, ok, "time.Duration is an int64 kind")
	e, _ := resolve.Default().Lookup(reflect.TypeFor[time.Duration]())
	v, _, _ = e.Adapt(reflect.ValueOf(d))
	assert.Equal(t, semantic.Int(int64(d)), v)
}

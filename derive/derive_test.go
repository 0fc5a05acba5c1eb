package derive_test

import (
	"net"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"filterable/derive"
	"filterable/scheme"
	"filterable/semantic"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type Empty struct {
	_ struct{} `filter:"name=empty"`

	A string         `filter:"name=test.a"`
	B net.IP         `filter:"name=b"`
	C uint           `filter:"name=c"`
	D *string        `filter:"name=d"`
	E semantic.Pairs `filter:"name=e"`
	F float64        `filter:"-"`
}

func ptr[T any](v T) *T { return &v }

func newEmpty() Empty {
	return Empty{
		A: "A",
		B: net.ParseIP("1.1.1.1"),
		C: 1234,
		D: ptr("D"),
		E: semantic.Pairs{{Key: "k", Value: "v"}},
		F: 3.14,
	}
}

func TestDerive_Schema(t *testing.T) {
	def, err := derive.Derive[Empty]()
	require.NoError(t, err)

	assert.Equal(t, "empty", def.Namespace())
	assert.Equal(t, reflect.TypeFor[Empty](), def.Type())
	assert.Len(t, def.Fields(), 6, "ignored fields still take part in the layout")

	want := []scheme.Field{
		{Path: "empty.test.a", Type: semantic.TypeText},
		{Path: "empty.b", Type: semantic.TypeAddress},
		{Path: "empty.c", Type: semantic.TypeInteger},
		{Path: "empty.d", Type: semantic.TypeText},
		{Path: "empty.e", Type: semantic.TypeText},
	}
	assert.Equal(t, want, def.Schema())

	fields := def.Fields()
	assert.Equal(t, []string{"empty", "test.a"}, fields[0].Segments)
	assert.True(t, fields[3].Optional())
	assert.False(t, fields[0].Optional())
	assert.True(t, fields[5].Ignore)
	assert.Nil(t, fields[5].GoType())
}

func TestDerive_Context(t *testing.T) {
	def := derive.MustDerive[Empty]()
	s, err := def.Scheme()
	require.NoError(t, err)

	ctx, err := derive.NewContext(def, s, newEmpty())
	require.NoError(t, err)

	want := map[string]semantic.Value{
		"empty.test.a": semantic.Text("A"),
		"empty.b":      semantic.Addr(netip.MustParseAddr("1.1.1.1")),
		"empty.c":      semantic.Int(1234),
		"empty.d":      semantic.Text("D"),
		"empty.e":      semantic.Text("k:v\n"),
	}
	if diff := cmp.Diff(want, ctx.Map()); diff != "" {
		t.Errorf("context mismatch (-want +got):\n%s", diff)
	}
}

func TestMaterialize_AbsentValues(t *testing.T) {
	def := derive.MustDerive[Empty]()
	s, err := def.Scheme()
	require.NoError(t, err)

	e := newEmpty()
	e.D = nil
	e.E = semantic.Pairs{}
	e.B = nil

	ctx, err := derive.NewContext(def, s, &e)
	require.NoError(t, err)

	got := ctx.Map()
	assert.Len(t, got, 2, spew.Sdump(got))
	assert.NotContains(t, got, "empty.d")
	assert.NotContains(t, got, "empty.e")
	assert.NotContains(t, got, "empty.b")
	assert.Equal(t, 5, s.Len(), "absent values keep their schema entries")
}

func TestMaterialize_Idempotent(t *testing.T) {
	def := derive.MustDerive[Empty]()
	s, err := def.Scheme()
	require.NoError(t, err)

	first, err := derive.NewContext(def, s, newEmpty())
	require.NoError(t, err)
	second, err := derive.NewContext(def, s, newEmpty())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first.Map(), second.Map()))
}

type mismatched struct {
	W int    `filter:"name=w"`
	X string `filter:"name=x"`
	Y int    `filter:"name=y"`
}

func TestMaterialize_TypeMismatchKeepsEarlierFields(t *testing.T) {
	def := derive.MustDerive[mismatched]()
	s := scheme.MustNew([]scheme.Field{
		{Path: "w", Type: semantic.TypeInteger},
		{Path: "x", Type: semantic.TypeAddress},
		{Path: "y", Type: semantic.TypeInteger},
	})

	ctx, err := derive.NewContext(def, s, mismatched{W: 1, X: "1.1.1.1", Y: 2})
	require.ErrorIs(t, err, scheme.ErrTypeMismatch)

	var mismatch *scheme.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "x", mismatch.Path)

	assert.Equal(t, map[string]semantic.Value{"w": semantic.Int(1)}, ctx.Map(),
		"fields before the failure stay, fields after it are never written")
}

func TestMaterialize_IntegerOverflow(t *testing.T) {
	type wide struct {
		N uint64
	}

	def := derive.MustDerive[wide]()
	s, err := def.Scheme()
	require.NoError(t, err)

	_, err = derive.NewContext(def, s, wide{N: 1 << 63})
	assert.ErrorIs(t, err, semantic.ErrIntegerOverflow)
}

func TestMaterialize_InstanceType(t *testing.T) {
	def := derive.MustDerive[Empty]()
	ctx := scheme.NewContext(scheme.MustNew(def.Schema()))

	assert.ErrorIs(t, def.Materialize(nil, ctx), derive.ErrInstanceType)
	assert.ErrorIs(t, def.Materialize((*Empty)(nil), ctx), derive.ErrInstanceType)
	assert.ErrorIs(t, def.Materialize(mismatched{}, ctx), derive.ErrInstanceType)
	assert.Zero(t, ctx.Len())
}

func TestNewContext_NilScheme(t *testing.T) {
	def := derive.MustDerive[Empty]()

	ctx, err := derive.NewContext(def, nil, newEmpty())
	assert.ErrorIs(t, err, derive.ErrNilScheme)
	assert.Nil(t, ctx)
}

func TestDerive_DeclaredNamesWithoutNamespace(t *testing.T) {
	type plain struct {
		Host    string
		Port    uint16
		private string
		Client  *netip.Addr `filter:"name=ip.src"`
	}

	def, err := derive.Derive[*plain]()
	require.NoError(t, err)
	assert.Empty(t, def.Namespace())
	assert.Equal(t, []scheme.Field{
		{Path: "Host", Type: semantic.TypeText},
		{Path: "Port", Type: semantic.TypeInteger},
		{Path: "ip.src", Type: semantic.TypeAddress},
	}, def.Schema())

	// a dotted rename is one name, not several segments
	assert.Equal(t, []string{"ip.src"}, def.Fields()[2].Segments)
}

func TestDerive_Errors(t *testing.T) {
	type unsupported struct {
		At time.Time
	}
	type nested struct {
		Inner struct{ A string }
	}
	type malformed struct {
		A string `filter:"rename=x"`
	}
	type emptySegment struct {
		A string `filter:"name=a..b"`
	}
	type twoMarkers struct {
		_ struct{} `filter:"name=a"`
		_ struct{} `filter:"name=b"`
		A string
	}
	type ignoredMarker struct {
		_ struct{} `filter:"-"`
		A string
	}
	type taggedUnexported struct {
		a string `filter:"name=a"`
	}

	tests := []struct {
		name string
		typ  reflect.Type
		want error
	}{
		{"unsupported", reflect.TypeFor[unsupported](), derive.ErrUnsupportedType},
		{"nested struct", reflect.TypeFor[nested](), derive.ErrUnsupportedType},
		{"not a struct", reflect.TypeFor[string](), derive.ErrUnsupportedType},
		{"nil", nil, derive.ErrUnsupportedType},
		{"malformed", reflect.TypeFor[malformed](), derive.ErrMalformedAnnotation},
		{"empty segment", reflect.TypeFor[emptySegment](), derive.ErrMalformedAnnotation},
		{"two markers", reflect.TypeFor[twoMarkers](), derive.ErrMalformedAnnotation},
		{"ignored marker", reflect.TypeFor[ignoredMarker](), derive.ErrMalformedAnnotation},
		{"tagged unexported", reflect.TypeFor[taggedUnexported](), derive.ErrMalformedAnnotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := derive.DeriveType(tt.typ)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, def, "no partial definition")
		})
	}
}

func TestDerive_PathCollision(t *testing.T) {
	type clash struct {
		A string `filter:"name=x"`
		B int    `filter:"name=x"`
	}

	def, err := derive.Derive[clash]()
	require.NoError(t, err, "collisions are left to the scheme by default")

	_, err = def.Scheme()
	assert.ErrorIs(t, err, scheme.ErrDuplicateField)

	_, err = derive.Derive[clash](derive.WithUniquePaths())
	assert.ErrorIs(t, err, derive.ErrPathCollision)
}

func TestDerive_TagKey(t *testing.T) {
	type custom struct {
		_ struct{} `rule:"name=req"`
		A string   `rule:"name=a" filter:"-"`
		B string   `rule:"-"`
	}

	def, err := derive.Derive[custom](derive.WithTagKey("rule"))
	require.NoError(t, err)
	assert.Equal(t, []scheme.Field{{Path: "req.a", Type: semantic.TypeText}}, def.Schema())
}

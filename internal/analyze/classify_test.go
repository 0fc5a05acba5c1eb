package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filterable/resolve"
	"filterable/semantic"
)

func named(pkgPath, pkgName, name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(0, types.NewPackage(pkgPath, pkgName), name, nil)
	return types.NewNamed(obj, underlying, nil)
}

func TestClassify(t *testing.T) {
	pair := named(semanticPkgPath, "semantic", "Pair", types.NewStruct(nil, nil))
	ip := named("net", "net", "IP", types.NewSlice(types.Typ[types.Byte]))
	addr := named("net/netip", "netip", "Addr", types.NewStruct(nil, nil))
	status := named("example.com/app", "app", "Status", types.Typ[types.String])
	headers := named("example.com/app", "app", "Headers", types.NewSlice(pair))
	optText := named("example.com/app", "app", "OptText", types.NewPointer(types.Typ[types.String]))
	optStatus := named("example.com/app", "app", "OptStatus", types.NewPointer(status))

	tests := []struct {
		name     string
		typ      types.Type
		shape    Shape
		optional int
		convert  bool
	}{
		{"string", types.Typ[types.String], ShapeText, 0, false},
		{"named string", status, ShapeText, 0, true},
		{"optional named string", types.NewPointer(status), ShapeText, 1, true},
		{"int", types.Typ[types.Int], ShapeInteger, 0, false},
		{"uint64", types.Typ[types.Uint64], ShapeInteger, 0, false},
		{"uintptr", types.Typ[types.Uintptr], ShapeInteger, 0, false},
		{"byte", types.Typ[types.Byte], ShapeInteger, 0, false},
		{"net.IP", ip, ShapeIP, 0, false},
		{"netip.Addr", addr, ShapeAddr, 0, false},
		{"double pointer addr", types.NewPointer(types.NewPointer(addr)), ShapeAddr, 2, false},
		{"named pointer", optText, ShapeText, 1, false},
		{"named pointer to named string", optStatus, ShapeText, 1, true},
		{"pointer to named pointer", types.NewPointer(optText), ShapeText, 2, false},
		{"pairs", types.NewSlice(pair), ShapePairs, 0, false},
		{"named pairs", headers, ShapePairs, 0, false},
		{"array pairs", types.NewSlice(types.NewArray(types.Typ[types.String], 2)), ShapeArrayPairs, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, optional, convert, err := Classify(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, shape)
			assert.Equal(t, tt.optional, optional)
			assert.Equal(t, tt.convert, convert)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	for _, typ := range []types.Type{
		types.Typ[types.Bool],
		types.Typ[types.Float64],
		types.Typ[types.UntypedInt],
		types.NewSlice(types.Typ[types.Byte]),
		types.NewSlice(types.Typ[types.String]),
		types.NewMap(types.Typ[types.String], types.Typ[types.String]),
		types.NewStruct(nil, nil),
		named("time", "time", "Time", types.NewStruct(nil, nil)),
	} {
		_, _, _, err := Classify(typ)
		assert.ErrorIs(t, err, resolve.ErrUnsupportedType, "type %s", typ)
	}
}

func TestShape_Type(t *testing.T) {
	assert.Equal(t, semantic.TypeText, ShapePairs.Type())
	assert.Equal(t, semantic.TypeAddress, ShapeIP.Type())
	assert.Equal(t, semantic.TypeInteger, ShapeInteger.Type())
	assert.Zero(t, ShapeUnknown.Type())
	assert.Equal(t, "array-pairs", ShapeArrayPairs.String())
}

package analyze

import (
	"fmt"
	"go/types"
	"reflect"

	"filterable/resolve"
	"filterable/semantic"
)

var semanticPkgPath = reflect.TypeFor[semantic.Pair]().PkgPath()

// Classify maps a declared field type to its shape, mirroring resolve.Default.
// Pointers are optional wrappers; their depth is returned separately.
func Classify(t types.Type) (shape Shape, optional int, convert bool, err error) {
	base := types.Unalias(t)
	for {
		// named pointer types are optional wrappers too
		p, ok := base.Underlying().(*types.Pointer)
		if !ok {
			break
		}
		optional++
		base = types.Unalias(p.Elem())
	}

	if named, ok := base.(*types.Named); ok {
		switch qualifiedName(named) {
		case "net.IP":
			return ShapeIP, optional, false, nil
		case "net/netip.Addr":
			return ShapeAddr, optional, false, nil
		}
	}

	switch u := base.Underlying().(type) {
	case *types.Basic:
		switch {
		case u.Info()&types.IsUntyped != 0:
		case u.Info()&types.IsString != 0:
			return ShapeText, optional, !types.Identical(base, types.Typ[types.String]), nil
		case u.Info()&types.IsInteger != 0:
			return ShapeInteger, optional, false, nil
		}

	case *types.Slice:
		elem := types.Unalias(u.Elem())
		if named, ok := elem.(*types.Named); ok && qualifiedName(named) == semanticPkgPath+".Pair" {
			return ShapePairs, optional, false, nil
		}
		if types.Identical(elem, types.NewArray(types.Typ[types.String], 2)) {
			return ShapeArrayPairs, optional, false, nil
		}
	}

	return ShapeUnknown, 0, false, fmt.Errorf("%w: %s", resolve.ErrUnsupportedType, t)
}

func qualifiedName(named *types.Named) string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}

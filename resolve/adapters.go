package resolve

import (
	"net"
	"net/netip"
	"reflect"

	"filterable/semantic"
)

func adaptText(v reflect.Value) (semantic.Value, bool, error) {
	return semantic.Text(v.String()), true, nil
}

func adaptSigned(v reflect.Value) (semantic.Value, bool, error) {
	return semantic.Int(v.Int()), true, nil
}

func adaptUnsigned(v reflect.Value) (semantic.Value, bool, error) {
	val, err := semantic.Uint64(v.Uint())
	if err != nil {
		return semantic.Value{}, false, err
	}

	return val, true, nil
}

func adaptIP(v reflect.Value) (semantic.Value, bool, error) {
	return semantic.IP(net.IP(v.Bytes()))
}

func adaptAddr(v reflect.Value) (semantic.Value, bool, error) {
	return semantic.Addr(v.Interface().(netip.Addr)), true, nil
}

func adaptPairs(v reflect.Value) (semantic.Value, bool, error) {
	pairs := make([]semantic.Pair, v.Len())
	for i := range pairs {
		pairs[i] = v.Index(i).Interface().(semantic.Pair)
	}

	val, ok := semantic.Flatten(pairs)
	return val, ok, nil
}

func adaptArrayPairs(v reflect.Value) (semantic.Value, bool, error) {
	pairs := make([][2]string, v.Len())
	for i := range pairs {
		pairs[i] = v.Index(i).Interface().([2]string)
	}

	val, ok := semantic.FlattenArrays(pairs)
	return val, ok, nil
}

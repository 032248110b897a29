package docvalue

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/oaswrite/oaswrite/oaserrors"
)

// FromNative converts a native Go value into a Value.
//
// Supported inputs: nil, bool, all signed/unsigned integer widths, float32,
// float64, string, slices and arrays of supported values, maps with string
// keys and supported values, []Entry (preserving entry order), pointers to
// supported values, and Value itself (returned unchanged). Conversion never
// coerces scalar kinds: a numeric string stays a string.
//
// Go map iteration order is not defined, so map keys are sorted to make the
// resulting entry order deterministic. Callers that need a specific key
// order supply []Entry or build with Map directly.
//
// Unsupported input kinds (functions, channels, structs, complex numbers,
// non-string-keyed maps), non-finite floats, and cyclic structures produce
// an *oaserrors.ConversionError naming the path to the offending value.
func FromNative(v any) (Value, error) {
	return fromNative(v, "$", nil)
}

// MustFromNative is FromNative that panics on error, for static values
// known to be convertible.
func MustFromNative(v any) Value {
	val, err := FromNative(v)
	if err != nil {
		panic(err)
	}
	return val
}

func fromNative(v any, path string, seen []uintptr) (Value, error) {
	// Fast paths for the common concrete types.
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float64:
		return finiteFloat(t, path, "float64")
	case string:
		return Str(t), nil
	case []Entry:
		return Map(t...), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, &oaserrors.ConversionError{
				Path:    path,
				GoType:  rv.Type().String(),
				Message: fmt.Sprintf("unsigned value %d overflows int64", u),
			}
		}
		return Int(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return finiteFloat(rv.Float(), path, rv.Type().String())

	case reflect.String:
		return Str(rv.String()), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Kind() == reflect.Pointer {
			if slices.Contains(seen, rv.Pointer()) {
				return Value{}, cycleError(path, rv)
			}
			seen = append(seen, rv.Pointer())
		}
		return fromNative(rv.Elem().Interface(), path, seen)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return Null(), nil
			}
			if slices.Contains(seen, rv.Pointer()) {
				return Value{}, cycleError(path, rv)
			}
			seen = append(seen, rv.Pointer())
		}
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := fromNative(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i), seen)
			if err != nil {
				return Value{}, err
			}
			items[i] = item
		}
		return Value{kind: KindSeq, seq: items}, nil

	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, &oaserrors.ConversionError{
				Path:    path,
				GoType:  rv.Type().String(),
				Message: "map keys must be strings",
			}
		}
		if slices.Contains(seen, rv.Pointer()) {
			return Value{}, cycleError(path, rv)
		}
		seen = append(seen, rv.Pointer())

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)

		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			elem := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			converted, err := fromNative(elem.Interface(), path+"."+k, seen)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry{Key: k, Value: converted})
		}
		return Value{kind: KindMap, entries: entries}, nil

	default:
		return Value{}, &oaserrors.ConversionError{
			Path:    path,
			GoType:  rv.Type().String(),
			Message: "unsupported type",
		}
	}
}

// finiteFloat rejects NaN and the infinities: neither format has a
// portable literal for them, so they fail here instead of reaching an
// encoder.
func finiteFloat(f float64, path, goType string) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &oaserrors.ConversionError{
			Path:    path,
			GoType:  goType,
			Message: fmt.Sprintf("non-finite float %v is not representable", f),
		}
	}
	return Float(f), nil
}

func cycleError(path string, rv reflect.Value) error {
	return &oaserrors.ConversionError{
		Path:    path,
		GoType:  rv.Type().String(),
		Message: "cyclic structure",
	}
}

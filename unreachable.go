package narrow

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reoring/narrow/i18n"
)

// ErrUnexpectedVariant is matched (errors.Is) by every failure produced by Unreachable.
var ErrUnexpectedVariant = errors.New("unexpected variant")

// Unreachable reports that a value reached a branch no declared variant can reach.
// Use it as the default of a type switch over a sealed union:
//
//	switch s := s.(type) {
//	case Square:
//	    ...
//	default:
//	    return 0, narrow.Unreachable(s)
//	}
func Unreachable(v any) error {
	params := map[string]any{"value": v}
	hint := "unexpected object: " + describeValue(v)
	if k, ok := KindOf(v); ok {
		params["kind"] = k
	}
	return Issues{Issue{
		Path:    "/",
		Code:    CodeUnexpectedVariant,
		Message: i18n.T(CodeUnexpectedVariant, nil),
		Hint:    hint,
		Cause:   ErrUnexpectedVariant,
		Params:  params,
	}}
}

// MustNotReach panics with the Unreachable error for v.
func MustNotReach(v any) {
	panic(Unreachable(v))
}

// KindOf returns the discriminator of v when v exposes a string-like Kind() method.
func KindOf(v any) (string, bool) {
	if isNil(v) {
		return "", false
	}
	m := reflect.ValueOf(v).MethodByName("Kind")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return "", false
	}
	out := m.Call(nil)[0]
	if out.Kind() != reflect.String {
		return "", false
	}
	return out.String(), true
}

// isNil reports a nil interface or a typed nil pointer, map, slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func describeValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	if k, ok := KindOf(v); ok {
		return fmt.Sprintf("%T(kind=%q) %+v", v, k, v)
	}
	return fmt.Sprintf("%T %+v", v, v)
}

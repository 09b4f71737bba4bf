package outcome

import (
	"reflect"
	"runtime"
	"strings"
)

// IsNil reports whether i is nil, including typed nil function and pointer
// values hiding behind an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Faults unpacks err into its constituent errors, unwrapping joined errors
// produced by errors.Join. A nil err yields an empty slice.
func Faults(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}
	return []error{err}
}

// FuncName resolves the declared name of fn (package-qualified, module path
// trimmed), or "" when fn is not a named function.
func FuncName(fn any) string {
	if IsNil(fn) {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

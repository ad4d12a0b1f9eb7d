package monad

import (
	"reflect"
)

// IsNil reports whether i is nil, including typed nil values hiding
// behind a non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// UnwrapAll returns the individual errors joined into err. A plain
// error yields a single-element slice, a nil error an empty one.
func UnwrapAll(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

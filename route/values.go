package route

// Values holds decoded parameter values keyed by name. A key that is
// absent was either not declared or resolved to the absent value by an
// optional transformer without a fallback.
type Values map[string]any

// Get returns the value for name as type T. It reports false when the
// key is absent or holds a different type. A null-valued parameter
// (param.Null) stores a nil entry, which Get cannot assert; read those
// with a plain map lookup.
func Get[T any](v Values, name string) (T, bool) {
	x, ok := v[name]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := x.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return t, true
}

// GetOr returns the value for name as type T, or fallback when the key
// is absent or holds a different type.
func GetOr[T any](v Values, name string, fallback T) T {
	if t, ok := Get[T](v, name); ok {
		return t
	}
	return fallback
}

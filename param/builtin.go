package param

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// String returns a transformer for plain string values.
func String() Transformer[string] {
	return Transformer[string]{
		encode: func(v string) ([]string, error) { return []string{v}, nil },
		decode: func(raw []string) (string, error) { return raw[0], nil },
	}
}

// Int returns a transformer for decimal integers.
func Int() Transformer[int] {
	return Transformer[int]{
		encode: func(v int) ([]string, error) {
			return []string{strconv.Itoa(v)}, nil
		},
		decode: func(raw []string) (int, error) {
			return strconv.Atoi(raw[0])
		},
	}
}

// Float returns a transformer for float64 values. Encoding uses the
// shortest decimal form that parses back exactly, so decode(encode(v))
// returns v bit for bit. The textual form is normalized: "1.50"
// decodes to 1.5 and re-encodes as "1.5".
func Float() Transformer[float64] {
	return Transformer[float64]{
		encode: func(v float64) ([]string, error) {
			return []string{strconv.FormatFloat(v, 'g', -1, 64)}, nil
		},
		decode: func(raw []string) (float64, error) {
			return strconv.ParseFloat(raw[0], 64)
		},
	}
}

// Bool returns a transformer for boolean values. Encoding always
// produces "true" or "false"; decoding accepts the forms recognized
// by strconv.ParseBool (1, t, TRUE, 0, f, FALSE, ...), so the decoded
// value is exact but the textual form is normalized.
func Bool() Transformer[bool] {
	return Transformer[bool]{
		kind: KindBool,
		encode: func(v bool) ([]string, error) {
			return []string{strconv.FormatBool(v)}, nil
		},
		decode: func(raw []string) (bool, error) {
			return strconv.ParseBool(raw[0])
		},
	}
}

// Null returns a transformer that carries only the nil value, encoded
// as the literal token "null". Any other value or token is rejected.
// The query codec may rewrite the token on the wire via its Format.
func Null() Transformer[any] {
	return Transformer[any]{
		kind: KindNull,
		encode: func(v any) ([]string, error) {
			if v != nil {
				return nil, fmt.Errorf("param: null transformer given non-nil value %v", v)
			}
			return []string{"null"}, nil
		},
		decode: func(raw []string) (any, error) {
			if raw[0] != "null" {
				return nil, fmt.Errorf("param: expected the token %q", "null")
			}
			return nil, nil
		},
	}
}

// Date returns a transformer for time.Time values encoded as RFC 3339
// with sub-second precision. Normalization: the monotonic clock reading
// is dropped and the location is reduced to a fixed UTC offset, so the
// round-trip preserves the instant and offset but not the zone name.
func Date() Transformer[time.Time] {
	return Transformer[time.Time]{
		encode: func(v time.Time) ([]string, error) {
			return []string{v.Format(time.RFC3339Nano)}, nil
		},
		decode: func(raw []string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, raw[0])
		},
	}
}

// UUID returns a transformer for RFC 4122 UUIDs in their canonical
// 36-character form. Decoding accepts the variants recognized by
// uuid.Parse (urn: prefix, braces, no hyphens); encoding always uses
// the canonical form.
func UUID() Transformer[uuid.UUID] {
	return Transformer[uuid.UUID]{
		encode: func(v uuid.UUID) ([]string, error) {
			return []string{v.String()}, nil
		},
		decode: func(raw []string) (uuid.UUID, error) {
			return uuid.Parse(raw[0])
		},
	}
}

// OneOf returns a string transformer restricted to the given set of
// literals. Both encode and decode reject values outside the set.
func OneOf(allowed ...string) Transformer[string] {
	set := make([]string, len(allowed))
	copy(set, allowed)
	member := func(v string) bool {
		for _, a := range set {
			if a == v {
				return true
			}
		}
		return false
	}
	return Transformer[string]{
		encode: func(v string) ([]string, error) {
			if !member(v) {
				return nil, fmt.Errorf("param: %q is not one of %v", v, set)
			}
			return []string{v}, nil
		},
		decode: func(raw []string) (string, error) {
			if !member(raw[0]) {
				return "", fmt.Errorf("param: %q is not one of %v", raw[0], set)
			}
			return raw[0], nil
		},
	}
}

// ArrayOf returns a transformer for slices of the inner transformer's
// value type. Each element encodes to one wire string. On wires that
// support repetition (the query codec's default format) the strings
// travel as repeated values; on single-valued wires (path parameters,
// comma array format) they are joined with commas, and a single wire
// string is split on commas before decoding. Element values containing
// commas therefore do not round-trip through a single-valued wire;
// this mirrors the underlying matcher handing a repeated path value
// over as one pre-joined string. An empty slice encodes to nothing and
// is indistinguishable from an absent value.
func ArrayOf[T any](inner Transformer[T]) Transformer[[]T] {
	return Transformer[[]T]{
		kind: KindArray,
		encode: func(vs []T) ([]string, error) {
			out := make([]string, 0, len(vs))
			for _, v := range vs {
				raw, err := inner.encode(v)
				if err != nil {
					return nil, err
				}
				if len(raw) != 1 {
					return nil, fmt.Errorf("param: array element must encode to exactly one string, got %d", len(raw))
				}
				out = append(out, raw[0])
			}
			return out, nil
		},
		decode: func(raw []string) ([]T, error) {
			if len(raw) == 1 {
				raw = strings.Split(raw[0], ",")
			}
			out := make([]T, 0, len(raw))
			for _, s := range raw {
				v, err := inner.decode([]string{s})
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		},
	}
}

// Custom returns a transformer built from a user-supplied encode and
// decode pair operating on a single wire string. The pair may
// serialize composite data to one string; the algebra only requires
// the string contract, not any particular value shape.
func Custom[T any](encode func(T) (string, error), decode func(string) (T, error)) Transformer[T] {
	return Transformer[T]{
		encode: func(v T) ([]string, error) {
			s, err := encode(v)
			if err != nil {
				return nil, err
			}
			return []string{s}, nil
		},
		decode: func(raw []string) (T, error) {
			return decode(raw[0])
		},
	}
}

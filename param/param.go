package param

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a transformer's wire shape. Codecs that support
// configurable stringification (the query codec) consult it to apply
// format rules without inspecting decoded values.
type Kind uint8

const (
	// KindScalar is a plain single-string value.
	KindScalar Kind = iota
	// KindBool encodes to the words true/false.
	KindBool
	// KindNull encodes the nil value to the token "null".
	KindNull
	// KindArray encodes to zero or more strings, one per element.
	KindArray
)

// ErrAbsent is returned by Decode when a required transformer is given
// no input. Codecs normally handle absence structurally before calling
// Decode; this surfaces only on direct transformer use.
var ErrAbsent = errors.New("param: value absent")

// DecodeError reports a raw value that could not be converted by a
// transformer. Optional transformers absorb it; everywhere else it is
// collected into the codec's aggregate parse failure.
type DecodeError struct {
	// Param is the parameter name the value was decoded for.
	Param string
	// Raw is the offending wire value. Repeated values are joined
	// with commas for reporting.
	Raw string
	// Err is the underlying conversion error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("param: cannot decode %q for parameter %q: %v", e.Raw, e.Param, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Param is the codec-facing contract satisfied by every Transformer
// regardless of its value type, so a Spec can hold transformers of
// different types side by side. The methods are invoked by the route
// codecs; applications work with the typed Transformer API instead.
type Param interface {
	// EncodeAny encodes v, which must hold the transformer's value
	// type. The result is the wire form: one string for scalars,
	// one string per element for arrays, empty for absent.
	EncodeAny(name string, v any) ([]string, error)

	// DecodeAny decodes the wire form. present reports whether a
	// value (decoded or fallback) should appear in the result set;
	// an optional transformer with no fallback resolves absence and
	// malformed input to present=false with a nil error.
	DecodeAny(name string, raw []string) (value any, present bool, err error)

	// IsOptional reports whether decode failures are absorbed
	// instead of propagated.
	IsOptional() bool

	// Kind reports the transformer's wire shape.
	Kind() Kind
}

// Spec maps parameter names to their transformers. One Spec instance
// describes one codec part (path or query). Keys are unique by
// construction; no ordering is implied.
type Spec map[string]Param

// Transformer converts between a typed value and its string wire form.
// The zero value is not usable; construct transformers through the
// factory functions or Custom. Transformers are immutable values: the
// Optional and OptionalOr decorators return fresh copies and every
// factory call returns an independent value, so transformers defined
// at module scope are safe for concurrent use.
type Transformer[T any] struct {
	encode func(T) ([]string, error)
	decode func([]string) (T, error)

	kind        Kind
	opt         bool
	fallback    T
	hasFallback bool
}

// Encode converts v to its wire form.
func (t Transformer[T]) Encode(v T) ([]string, error) {
	return t.encode(v)
}

// Decode converts the wire form back to a value. Absent input resolves
// to the fallback (or zero value) for optional transformers and to
// ErrAbsent otherwise. Malformed input is absorbed into the fallback
// when the transformer is optional.
func (t Transformer[T]) Decode(raw []string) (T, error) {
	if len(raw) == 0 {
		if t.opt || t.hasFallback {
			return t.fallback, nil
		}
		var zero T
		return zero, ErrAbsent
	}
	v, err := t.decode(raw)
	if err != nil {
		if t.opt || t.hasFallback {
			return t.fallback, nil
		}
		var zero T
		return zero, err
	}
	return v, nil
}

// Optional returns a copy whose decode never fails: absent or malformed
// input resolves to the absent value instead of an error.
func (t Transformer[T]) Optional() Transformer[T] {
	t.opt = true
	return t
}

// OptionalOr returns a copy whose decode never fails and resolves
// absent or malformed input to the given fallback value.
func (t Transformer[T]) OptionalOr(fallback T) Transformer[T] {
	t.opt = true
	t.fallback = fallback
	t.hasFallback = true
	return t
}

// IsOptional implements Param.
func (t Transformer[T]) IsOptional() bool { return t.opt }

// Kind implements Param.
func (t Transformer[T]) Kind() Kind { return t.kind }

// EncodeAny implements Param.
func (t Transformer[T]) EncodeAny(name string, v any) ([]string, error) {
	if v == nil && t.kind != KindNull {
		return nil, fmt.Errorf("param: nil value for parameter %q", name)
	}
	tv, ok := v.(T)
	if !ok && v != nil {
		return nil, fmt.Errorf("param: value %v (%T) for parameter %q has the wrong type", v, v, name)
	}
	return t.encode(tv)
}

// DecodeAny implements Param.
func (t Transformer[T]) DecodeAny(name string, raw []string) (any, bool, error) {
	if len(raw) == 0 {
		if t.hasFallback {
			return t.fallback, true, nil
		}
		return nil, false, nil
	}
	v, err := t.decode(raw)
	if err != nil {
		if t.opt || t.hasFallback {
			if t.hasFallback {
				return t.fallback, true, nil
			}
			return nil, false, nil
		}
		return nil, false, &DecodeError{Param: name, Raw: strings.Join(raw, ","), Err: err}
	}
	return v, true, nil
}

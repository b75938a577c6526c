package route

import (
	"encoding/base64"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// StateCodec converts the application's opaque state payload to and
// from the form the navigation layer carries alongside a location.
// The library performs no validation beyond delegating to the pair.
type StateCodec interface {
	EncodeState(v any) (any, error)
	DecodeState(raw any) (any, error)
}

// StateOf adapts a typed encode/decode pair into a StateCodec.
// EncodeState rejects values that are not of type T; DecodeState
// delegates entirely to the supplied decode.
func StateOf[T any](encode func(T) (any, error), decode func(any) (T, error)) StateCodec {
	return &stateFuncs[T]{encode: encode, decode: decode}
}

type stateFuncs[T any] struct {
	encode func(T) (any, error)
	decode func(any) (T, error)
}

func (s *stateFuncs[T]) EncodeState(v any) (any, error) {
	tv, ok := v.(T)
	if !ok {
		return nil, fmt.Errorf("route: state value %v (%T) has the wrong type", v, v)
	}
	return s.encode(tv)
}

func (s *stateFuncs[T]) DecodeState(raw any) (any, error) {
	return s.decode(raw)
}

// MsgpackState returns a StateCodec that serializes T with msgpack and
// carries it as a base64 (unpadded, URL-safe) string. Use it when the
// navigation layer persists state as text, such as session storage or
// server-rendered markup.
func MsgpackState[T any]() StateCodec {
	return StateOf(
		func(v T) (any, error) {
			packed, err := msgpack.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("route: state encode: %w", err)
			}
			return base64.RawURLEncoding.EncodeToString(packed), nil
		},
		func(raw any) (T, error) {
			var zero T
			s, ok := raw.(string)
			if !ok {
				return zero, fmt.Errorf("route: state payload %v (%T) is not a string", raw, raw)
			}
			packed, err := base64.RawURLEncoding.DecodeString(s)
			if err != nil {
				return zero, fmt.Errorf("route: state decode: %w", err)
			}
			var v T
			if err := msgpack.Unmarshal(packed, &v); err != nil {
				return zero, fmt.Errorf("route: state decode: %w", err)
			}
			return v, nil
		},
	)
}

// passthroughState carries the payload unchanged. It is the default
// when a route is bound without a state codec.
type passthroughState struct{}

func (passthroughState) EncodeState(v any) (any, error)   { return v, nil }
func (passthroughState) DecodeState(raw any) (any, error) { return raw, nil }

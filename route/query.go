package route

import (
	"net/url"
	"sort"
	"strings"

	"github.com/vitalvas/routec/param"
)

// ArrayFormat selects how repeated values travel in a query string.
type ArrayFormat int

const (
	// ArrayRepeat repeats the key: tags=a&tags=b.
	ArrayRepeat ArrayFormat = iota
	// ArrayComma joins the values under one key: tags=a,b.
	ArrayComma
)

// BoolFormat selects how boolean values travel in a query string.
type BoolFormat int

const (
	// BoolWords writes true and false.
	BoolWords BoolFormat = iota
	// BoolDigits writes 1 and 0.
	BoolDigits
)

// Format configures the query codec's stringification. The zero value
// is the default: repeated keys for arrays, word booleans, and "null"
// for the null token.
type Format struct {
	Array ArrayFormat
	Bool  BoolFormat
	// NullToken is the wire form of param.Null values; empty means
	// "null".
	NullToken string
}

func (f Format) nullToken() string {
	if f.NullToken == "" {
		return "null"
	}
	return f.NullToken
}

// Query builds and parses the query string part of a location. Every
// query field is conceptually optional: the navigation layer does not
// treat query strings as part of route matching, and a query string
// can be edited or stripped by hand, so absence is never an error —
// only malformed present values are. A Query is immutable after
// construction and safe for concurrent use.
type Query struct {
	spec param.Spec
	keys []string
	fmt  Format
}

// NewQuery binds a parameter spec, optionally with a Format (at most
// one; later values win, matching the optional-argument style of
// BindJSON).
func NewQuery(spec param.Spec, format ...Format) *Query {
	q := &Query{spec: make(param.Spec, len(spec))}
	for name, tr := range spec {
		q.spec[name] = tr
		q.keys = append(q.keys, name)
	}
	sort.Strings(q.keys)
	for _, f := range format {
		q.fmt = f
	}
	return q
}

// Build encodes every value present in values and serializes them in
// sorted key order, so equal inputs always produce the same string.
// Absent keys are omitted entirely; keys not declared in the spec are
// rejected with a BuildError. The result has no leading "?".
func (q *Query) Build(values Values) (string, error) {
	for k := range values {
		if _, ok := q.spec[k]; !ok {
			return "", &BuildError{Param: k, Reason: "not declared in query spec"}
		}
	}

	var b strings.Builder
	for _, k := range q.keys {
		v, ok := values[k]
		if !ok {
			continue
		}
		tr := q.spec[k]
		raw, err := tr.EncodeAny(k, v)
		if err != nil {
			return "", &BuildError{Param: k, Reason: "encode failed", Err: err}
		}
		if len(raw) == 0 {
			continue
		}
		raw = q.applyBuildFormat(tr.Kind(), raw)
		for _, s := range raw {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(s))
		}
	}
	return b.String(), nil
}

// Parse decodes every declared key from a raw query string. A leading
// "?" is tolerated. Declared-but-absent keys resolve through the
// transformer's optional and fallback behavior; absence never errors
// even for transformers not marked optional. Malformed present values
// aggregate into one ParseError unless their transformer is optional.
// Undeclared keys and pairs that fail percent-decoding are ignored.
func (q *Query) Parse(rawQuery string) (Values, error) {
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	// ParseQuery returns what it could parse alongside the error; a
	// hand-edited query string should degrade, not fail wholesale.
	vals, _ := url.ParseQuery(rawQuery)

	out := make(Values, len(q.keys))
	var failures []*param.DecodeError
	for _, k := range q.keys {
		tr := q.spec[k]
		raw := q.applyParseFormat(tr.Kind(), vals[k])
		v, present, err := tr.DecodeAny(k, raw)
		if err != nil {
			failures = append(failures, asDecodeError(k, err))
			continue
		}
		if present {
			out[k] = v
		}
	}
	if len(failures) > 0 {
		return nil, &ParseError{Failures: failures}
	}
	return out, nil
}

// applyBuildFormat rewrites encoded wire strings per the configured
// Format before serialization.
func (q *Query) applyBuildFormat(kind param.Kind, raw []string) []string {
	switch kind {
	case param.KindBool:
		if q.fmt.Bool == BoolDigits {
			mapped := make([]string, len(raw))
			for i, s := range raw {
				switch s {
				case "true":
					mapped[i] = "1"
				case "false":
					mapped[i] = "0"
				default:
					mapped[i] = s
				}
			}
			return mapped
		}
	case param.KindNull:
		if tok := q.fmt.nullToken(); tok != "null" {
			mapped := make([]string, len(raw))
			for i, s := range raw {
				if s == "null" {
					mapped[i] = tok
				} else {
					mapped[i] = s
				}
			}
			return mapped
		}
	case param.KindArray:
		if q.fmt.Array == ArrayComma && len(raw) > 1 {
			return []string{strings.Join(raw, ",")}
		}
	}
	return raw
}

// applyParseFormat normalizes wire strings back to the transformers'
// canonical forms before decoding. Digit booleans need no mapping
// because strconv.ParseBool accepts them; comma arrays need none
// because a single wire string is split by param.ArrayOf.
func (q *Query) applyParseFormat(kind param.Kind, raw []string) []string {
	if kind != param.KindNull {
		return raw
	}
	tok := q.fmt.nullToken()
	if tok == "null" {
		return raw
	}
	mapped := make([]string, len(raw))
	for i, s := range raw {
		if s == tok {
			mapped[i] = "null"
		} else {
			mapped[i] = s
		}
	}
	return mapped
}

// Keys returns the declared parameter names in sorted order.
func (q *Query) Keys() []string {
	keys := make([]string, len(q.keys))
	copy(keys, q.keys)
	return keys
}

// Optional reports whether the named parameter's transformer absorbs
// decode failures. Unknown names report false.
func (q *Query) Optional(name string) bool {
	tr, ok := q.spec[name]
	return ok && tr.IsOptional()
}

// Format returns the configured stringification format.
func (q *Query) Format() Format { return q.fmt }

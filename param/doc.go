// Package param implements the transformer algebra underlying the
// route codecs: typed encode/decode pairs over a string wire form,
// with optional and fallback semantics.
//
// A Transformer converts one value type to and from its wire form,
// which is zero or more strings (nil for absent, one string for
// scalars, one string per element for arrays). The built-in catalog
// covers the common cases:
//
//	param.String()          string
//	param.Int()             int
//	param.Float()           float64
//	param.Bool()            bool
//	param.Null()            the nil value only
//	param.Date()            time.Time (RFC 3339)
//	param.UUID()            uuid.UUID (RFC 4122)
//	param.OneOf("a", "b")   string restricted to a set
//	param.ArrayOf(inner)    slice of any inner transformer
//	param.Custom(enc, dec)  user-supplied single-string pair
//
// Every factory call returns a fresh immutable value; transformers
// defined at package scope may be shared by any number of goroutines.
//
// # Optional values and fallbacks
//
// Optional wraps a transformer so its decode can no longer fail:
// absent or malformed input resolves to the absent value, and
// OptionalOr substitutes a fallback instead:
//
//	page := param.Int().OptionalOr(1)
//	tab := param.OneOf("posts", "likes").Optional()
//
// Both decorators are pure: they return a new transformer and leave
// the receiver untouched.
//
// # Round-trip guarantees
//
// For String, Int, Float, Bool, UUID, OneOf, and ArrayOf over those,
// Decode(Encode(v)) returns a value equal to v. Transformers that
// normalize document it: Float and Bool normalize the textual form,
// Date drops the monotonic clock reading and the zone name, and
// ArrayOf cannot round-trip element values containing commas through
// a single-valued wire.
//
// # Specs
//
// A Spec maps parameter names to transformers and describes one codec
// part. The Param interface erases the value type so one Spec can mix
// transformers of different types; its methods are called by the
// route codecs, not by applications.
package param
